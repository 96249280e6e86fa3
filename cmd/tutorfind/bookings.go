package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List session requests you have sent",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("sessions", status, func(ctx context.Context) error {
				bookings, err := client.BookingsSent(ctx, token, status)
				if err != nil {
					return err
				}
				fmt.Print(out.Bookings(bookings, false))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: PENDING, ACCEPTED, DECLINED")
	return cmd
}

func requestsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Manage session requests sent to you",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("requests", status, func(ctx context.Context) error {
				bookings, err := client.BookingsReceived(ctx, token, status)
				if err != nil {
					return err
				}
				fmt.Print(out.Bookings(bookings, true))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: PENDING, ACCEPTED, DECLINED")
	cmd.AddCommand(respondCmd("accept"), respondCmd("decline"))
	return cmd
}

func respondCmd(action string) *cobra.Command {
	var response string

	cmd := &cobra.Command{
		Use:   action + " <id>",
		Short: capitalize(action) + " a session request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("request id must be a number")
			}

			return track(action, args[0], func(ctx context.Context) error {
				respond := client.AcceptBooking
				if action == "decline" {
					respond = client.DeclineBooking
				}
				booking, err := respond(ctx, token, id, response)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Request #%d %s", booking.ID, booking.Status)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&response, "response", "", "Optional note to the learner")
	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
