package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/domain"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "List and submit tutor reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("review.list", "", func(ctx context.Context) error {
				reviews, err := client.MyReviews(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.Reviews(reviews))
				return nil
			})
		},
	}

	cmd.AddCommand(reviewAddCmd())
	return cmd
}

func reviewAddCmd() *cobra.Command {
	var req domain.CreateReviewRequest
	var bookingID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a review for a tutor",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if req.TutorID == 0 {
				return fmt.Errorf("--tutor is required")
			}
			if req.Rating < 1 || req.Rating > 5 {
				return fmt.Errorf("rating must be between 1 and 5")
			}
			if cmd.Flags().Changed("booking") {
				req.BookingID = &bookingID
			}

			return track("review.add", fmt.Sprintf("tutor=%d", req.TutorID), func(ctx context.Context) error {
				review, err := client.CreateReview(ctx, token, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Review #%d submitted, awaiting moderation", review.ID)))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.TutorID, "tutor", 0, "Tutor id")
	cmd.Flags().IntVar(&req.Rating, "rating", 5, "Rating, 1 to 5")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "Review text")
	cmd.Flags().Int64Var(&bookingID, "booking", 0, "Booking this review is about")
	return cmd
}

func feedbackCmd() *cobra.Command {
	var given bool

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "List and write session feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("feedback.list", "", func(ctx context.Context) error {
				if given {
					items, err := client.FeedbackGiven(ctx, token)
					if err != nil {
						return err
					}
					fmt.Print(out.FeedbackList(items, false))
					return nil
				}
				items, err := client.FeedbackReceived(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.FeedbackList(items, true))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&given, "given", false, "Show feedback you wrote instead of received")
	cmd.AddCommand(feedbackShowCmd(), feedbackAddCmd())
	return cmd
}

func feedbackShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one feedback entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("feedback id must be a number")
			}

			return track("feedback.show", args[0], func(ctx context.Context) error {
				fb, err := client.FeedbackByID(ctx, token, id)
				if err != nil {
					return err
				}
				fmt.Print(out.Feedback(fb))
				return nil
			})
		},
	}
}

func feedbackAddCmd() *cobra.Command {
	var req domain.CreateFeedbackRequest
	var bookingID, subjectID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write feedback for a learner",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if req.LearnerID == 0 || req.FeedbackText == "" {
				return fmt.Errorf("--learner and --text are required")
			}
			if cmd.Flags().Changed("booking") {
				req.BookingID = &bookingID
			}
			if cmd.Flags().Changed("subject") {
				req.SubjectID = &subjectID
			}

			return track("feedback.add", fmt.Sprintf("learner=%d", req.LearnerID), func(ctx context.Context) error {
				fb, err := client.CreateFeedback(ctx, token, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Feedback #%d recorded", fb.ID)))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.LearnerID, "learner", 0, "Learner id")
	cmd.Flags().StringVar(&req.FeedbackText, "text", "", "Feedback text")
	cmd.Flags().StringVar(&req.SessionDate, "date", "", "Session date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Strengths, "strengths", "", "What went well")
	cmd.Flags().StringVar(&req.AreasForImprovement, "improve", "", "What to work on")
	cmd.Flags().Int64Var(&bookingID, "booking", 0, "Related booking id")
	cmd.Flags().Int64Var(&subjectID, "subject", 0, "Related subject id")
	return cmd
}
