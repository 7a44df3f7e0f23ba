package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"quickcourt/client"
	"quickcourt/config"
	"quickcourt/handlers"
	"quickcourt/middleware"
	"quickcourt/routes"
	"quickcourt/services/booking"
	"quickcourt/store"
	"quickcourt/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

const usage = `QuickCourt booking client

Usage:
  quickcourt venues [-sport SPORT] [-search TEXT]   list venues
  quickcourt book -venue ID [-email E -password P]  run the booking flow
  quickcourt bookings -email E -password P          list your bookings
  quickcourt demo                                   run the bundled demo API server
`

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "venues":
		err = runVenues(os.Args[2:])
	case "book":
		err = runBook(os.Args[2:])
	case "bookings":
		err = runBookings(os.Args[2:])
	case "demo":
		err = runDemoServer()
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newAPIClient() *client.Client {
	api := client.New(config.AppConfig.APIBaseURL, utils.GetLogger())
	if config.AppConfig.HTTPTimeoutSeconds > 0 {
		api.SetTimeout(time.Duration(config.AppConfig.HTTPTimeoutSeconds) * time.Second)
	}
	return api
}

func runVenues(args []string) error {
	fs := flag.NewFlagSet("venues", flag.ExitOnError)
	sport := fs.String("sport", "", "filter by sport")
	search := fs.String("search", "", "search venue name or city")
	_ = fs.Parse(args)

	api := newAPIClient()
	venues, err := api.ListVenues(context.Background(), *sport, *search)
	if err != nil {
		return err
	}
	if len(venues) == 0 {
		fmt.Println("No venues found.")
		return nil
	}
	for _, v := range venues {
		fmt.Printf("%-24s %s (%s)  sports: %s  rating: %.1f\n",
			v.ID, v.Name, v.City, strings.Join(v.Sports, ", "), v.Rating)
	}
	return nil
}

func runBookings(args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	api := newAPIClient()
	ctx := context.Background()
	if _, err := api.Login(ctx, *email, *password); err != nil {
		return err
	}
	bookings, err := api.ListMyBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("You have no bookings yet.")
		return nil
	}
	for _, b := range bookings {
		fmt.Printf("%s  %s, %s  %s %s - %s  %.0f (%s)\n",
			b.Date, b.VenueName, b.CourtName, b.Date, b.StartTime, b.EndTime, b.Price, b.Status)
	}
	return nil
}

// runBook walks the interactive selection flow: pick a court, adjust the
// date, pick a slot, confirm. On success it prints the payment URL and
// exits; the checkout hand-off is where control leaves the app.
func runBook(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	venueID := fs.String("venue", "", "venue id (see 'quickcourt venues')")
	email := fs.String("email", "", "optional account email")
	password := fs.String("password", "", "optional account password")
	_ = fs.Parse(args)

	if *venueID == "" {
		return errors.New("-venue is required")
	}

	api := newAPIClient()
	ctx := context.Background()
	if *email != "" {
		if _, err := api.Login(ctx, *email, *password); err != nil {
			return err
		}
	}

	venue, err := api.GetVenue(ctx, *venueID)
	if err != nil {
		return err
	}
	if len(venue.Courts) == 0 {
		fmt.Println("This venue has no courts to book.")
		return nil
	}

	fmt.Printf("%s, %s\n\nCourts:\n", venue.Name, venue.City)
	for i, court := range venue.Courts {
		fmt.Printf("  %d) %-22s %-14s %.0f/hour\n", i+1, court.Name, court.Sport, court.PricePerHour)
	}

	scanner := bufio.NewScanner(os.Stdin)
	courtIdx := promptIndex(scanner, "Choose a court", len(venue.Courts))
	if courtIdx < 0 {
		return nil
	}

	sess := booking.NewSession(venue.ID, api, utils.GetLogger())
	if err := sess.LoadSlots(ctx, sess.SelectCourt(venue.Courts[courtIdx])); err != nil {
		fmt.Printf("Could not load slots: %v\n", err)
	}

	for {
		printSlots(sess)
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "q":
			sess.Cancel()
			fmt.Println("Booking cancelled.")
			return nil
		case strings.HasPrefix(input, "d "):
			req, err := sess.SelectDate(strings.TrimSpace(strings.TrimPrefix(input, "d ")))
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := sess.LoadSlots(ctx, req); err != nil {
				fmt.Printf("Could not load slots: %v\n", err)
			}
		case input == "c":
			url, err := sess.Confirm(ctx)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("\nComplete your payment here:\n  %s\n", url)
			return nil
		default:
			idx, err := strconv.Atoi(input)
			slots := sess.AvailableSlots()
			if err != nil || idx < 1 || idx > len(slots) {
				fmt.Println("Enter a slot number, 'd YYYY-MM-DD' to change the date, 'c' to confirm, or 'q' to quit.")
				continue
			}
			if err := sess.SelectSlot(slots[idx-1].Label); err != nil {
				fmt.Println(err)
			}
		}
	}
}

func printSlots(sess *booking.Session) {
	fmt.Printf("\nDate: %s\n", sess.SelectedDate())
	slots := sess.AvailableSlots()
	if len(slots) == 0 {
		fmt.Println("No available slots.")
	} else {
		for i, slot := range slots {
			marker := " "
			if slot.Label == sess.SelectedSlot() {
				marker = "*"
			}
			fmt.Printf(" %s %d) %-15s %.0f\n", marker, i+1, slot.Label, slot.Price)
		}
	}
	fmt.Println("Commands: slot number, 'd YYYY-MM-DD', 'c' confirm, 'q' quit")
}

func promptIndex(scanner *bufio.Scanner, prompt string, max int) int {
	for {
		fmt.Printf("%s (1-%d, or q): ", prompt, max)
		if !scanner.Scan() {
			return -1
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" {
			return -1
		}
		idx, err := strconv.Atoi(input)
		if err == nil && idx >= 1 && idx <= max {
			return idx - 1
		}
	}
}

// runDemoServer starts the bundled API server the client can be pointed at
// for offline development. The client itself never falls back to canned
// data; demo data lives here, behind the same contract as the real backend.
func runDemoServer() error {
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	catalog := store.SeedCatalog()
	users := store.NewMemoryStore()

	var bookings store.BookingStore = users
	if config.AppConfig.RedisAddr != "" {
		redisStore, err := store.NewRedisBookingStore(
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
			config.AppConfig.RedisDB)
		if err != nil {
			return err
		}
		bookings = redisStore
		logger.Info("using Redis booking store", zap.String("addr", config.AppConfig.RedisAddr))
	}

	hb := &handlers.HandlerBundle{
		Venues:  handlers.NewVenueHandler(catalog),
		Auth:    handlers.NewAuthHandler(users, logger),
		Booking: handlers.NewBookingHandler(catalog, bookings, logger),
		Payment: handlers.NewPaymentHandler(catalog, bookings, logger),
	}
	routes.RegisterRoutes(router, hb)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting demo server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("demo server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("demo server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("demo server forced to shutdown: %w", err)
	}

	logger.Sugar().Info("demo server stopped gracefully")
	return nil
}
