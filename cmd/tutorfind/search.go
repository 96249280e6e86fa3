package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
)

func searchCmd() *cobra.Command {
	var filters api.SearchFilters

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search tutors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return track("search", filters.City+" "+filters.Subject, func(ctx context.Context) error {
				tutors, err := client.SearchTutors(ctx, filters)
				if err != nil {
					return err
				}
				fmt.Print(out.Tutors(tutors))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filters.City, "city", "", "Filter by city")
	cmd.Flags().StringVar(&filters.District, "district", "", "Filter by district")
	cmd.Flags().StringVar(&filters.Subject, "subject", "", "Filter by subject")
	cmd.Flags().StringVar(&filters.MinPrice, "min-price", "", "Minimum monthly rate")
	cmd.Flags().StringVar(&filters.MaxPrice, "max-price", "", "Maximum monthly rate")
	cmd.Flags().StringVar(&filters.MinRating, "min-rating", "", "Minimum rating")
	cmd.Flags().StringVar(&filters.SortBy, "sort", "rating", "Sort: rating, price_asc, price_desc")
	return cmd
}

func tutorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tutor <id>",
		Short: "Show a tutor's profile and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("tutor id must be a number")
			}

			return track("tutor", args[0], func(ctx context.Context) error {
				profile, err := client.TutorProfile(ctx, id)
				if err != nil {
					return err
				}
				reviews, err := client.TutorReviews(ctx, id)
				if err != nil {
					return err
				}
				fmt.Print(out.TutorProfile(profile, reviews))
				return nil
			})
		},
	}
}

func bookCmd() *cobra.Command {
	var req domain.CreateBookingRequest
	var price float64

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Request a session with a tutor",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if req.TutorID == 0 || req.Slot == "" {
				return fmt.Errorf("--tutor and --slot are required")
			}
			if cmd.Flags().Changed("price") {
				req.ProposedPrice = &price
			}

			return track("book", fmt.Sprintf("tutor=%d", req.TutorID), func(ctx context.Context) error {
				booking, err := client.CreateBooking(ctx, token, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Request #%d sent to %s", booking.ID, booking.TutorName)))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.TutorID, "tutor", 0, "Tutor id")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&req.Mode, "mode", "ONLINE", "Mode: ONLINE or IN_PERSON")
	cmd.Flags().StringVar(&req.Slot, "slot", "", "Requested slot, e.g. 'MONDAY 10:00'")
	cmd.Flags().StringVar(&req.Note, "note", "", "Note to the tutor")
	cmd.Flags().Float64Var(&price, "price", 0, "Proposed price")
	return cmd
}
