package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform moderation commands",
	}

	cmd.AddCommand(
		adminStatsCmd(),
		adminUsersCmd(),
		adminVerifyCmd("verify"),
		adminVerifyCmd("unverify"),
		adminReviewsCmd(),
		adminUserStateCmd("activate"),
		adminUserStateCmd("deactivate"),
	)
	return cmd
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform-wide counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("admin.stats", "", func(ctx context.Context) error {
				stats, err := client.AdminStats(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.AdminStats(stats))
				return nil
			})
		},
	}
}

func adminUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("admin.users", "", func(ctx context.Context) error {
				users, err := client.AdminUsers(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.AdminUsers(users))
				return nil
			})
		},
	}
}

func adminVerifyCmd(action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <tutor-id>",
		Short: capitalize(action) + " a tutor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "tutor")
			if err != nil {
				return err
			}
			return track("admin."+action, args[0], func(ctx context.Context) error {
				fn := client.AdminVerifyTutor
				if action == "unverify" {
					fn = client.AdminUnverifyTutor
				}
				if err := fn(ctx, token, id); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Tutor #%d %sied", id, action[:len(action)-1])))
				return nil
			})
		},
	}
}

func adminReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Moderate pending reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("admin.reviews", "", func(ctx context.Context) error {
				reviews, err := client.AdminPendingReviews(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.Reviews(reviews))
				return nil
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve a pending review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				token, err := requireToken()
				if err != nil {
					return err
				}
				id, err := parseID(args[0], "review")
				if err != nil {
					return err
				}
				return track("admin.approve", args[0], func(ctx context.Context) error {
					if err := client.AdminApproveReview(ctx, token, id); err != nil {
						return err
					}
					fmt.Println(out.Success(fmt.Sprintf("Review #%d approved", id)))
					return nil
				})
			},
		},
		adminRejectCmd(),
	)
	return cmd
}

func adminRejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "review")
			if err != nil {
				return err
			}
			return track("admin.reject", args[0], func(ctx context.Context) error {
				if err := client.AdminRejectReview(ctx, token, id, reason); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Review #%d rejected", id)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Optional rejection reason")
	return cmd
}

func adminUserStateCmd(action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <user-id>",
		Short: capitalize(action) + " a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			return track("admin."+action, args[0], func(ctx context.Context) error {
				fn := client.AdminActivateUser
				if action == "deactivate" {
					fn = client.AdminDeactivateUser
				}
				if err := fn(ctx, token, id); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("User #%d %sd", id, action)))
				return nil
			})
		},
	}
}
