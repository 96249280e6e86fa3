package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/domain"
)

func availabilityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "availability",
		Aliases: []string{"slots"},
		Short:   "Manage your weekly availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("availability.list", "", func(ctx context.Context) error {
				slots, err := client.MyAvailability(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.Slots(slots))
				return nil
			})
		},
	}

	cmd.AddCommand(availabilityAddCmd(), availabilityRemoveCmd())
	return cmd
}

func availabilityAddCmd() *cobra.Command {
	var req domain.AddAvailabilityRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly availability slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if req.DayOfWeek == "" || req.StartTime == "" || req.EndTime == "" {
				return fmt.Errorf("--day, --start and --end are required")
			}
			req.DayOfWeek = strings.ToUpper(req.DayOfWeek)

			return track("availability.add", req.DayOfWeek, func(ctx context.Context) error {
				slot, err := client.AddAvailability(ctx, token, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Slot #%d added: %s %s-%s",
					slot.Ref(), slot.Weekday(), slot.StartTime, slot.EndTime)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.DayOfWeek, "day", "", "Weekday, e.g. MONDAY")
	cmd.Flags().StringVar(&req.StartTime, "start", "", "Start time, e.g. 10:00")
	cmd.Flags().StringVar(&req.EndTime, "end", "", "End time, e.g. 12:00")
	return cmd
}

func availabilityRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an availability slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("slot id must be a number")
			}

			return track("availability.remove", args[0], func(ctx context.Context) error {
				if err := client.RemoveAvailability(ctx, token, id); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Slot #%d removed", id)))
				return nil
			})
		},
	}
}

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your tutor profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireToken(); err != nil {
				return err
			}
			return track("profile.show", "", func(ctx context.Context) error {
				profile, err := ownProfile(ctx)
				if err != nil {
					return err
				}
				reviews, err := client.TutorReviews(ctx, profile.ID)
				if err != nil {
					return err
				}
				fmt.Print(out.TutorProfile(profile, reviews))
				return nil
			})
		},
	}

	cmd.AddCommand(profileUpdateCmd(),
		profileCatalogCmd("subjects",
			func(ctx context.Context, token string, id int64) error { return client.AddSubject(ctx, token, id) },
			func(ctx context.Context, token string, id int64) error { return client.RemoveSubject(ctx, token, id) },
		),
		profileCatalogCmd("districts",
			func(ctx context.Context, token string, id int64) error { return client.AddDistrict(ctx, token, id) },
			func(ctx context.Context, token string, id int64) error { return client.RemoveDistrict(ctx, token, id) },
		),
	)
	return cmd
}

// ownProfile finds the caller's tutor profile. There is no /me endpoint;
// the profile is located by matching userId in the search results.
func ownProfile(ctx context.Context) (*domain.TutorProfile, error) {
	user := store.User()
	if user == nil {
		return nil, fmt.Errorf("not signed in")
	}

	tutors, err := client.SearchTutors(ctx, api.SearchFilters{})
	if err != nil {
		return nil, err
	}
	for _, t := range tutors {
		if t.UserID == user.ID {
			return client.TutorProfile(ctx, t.ID)
		}
	}
	return nil, fmt.Errorf("no tutor profile found for this account")
}

func profileUpdateCmd() *cobra.Command {
	var headline, bio, qualifications string
	var experience int
	var rateVal float64

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}

			return track("profile.update", "", func(ctx context.Context) error {
				current, err := ownProfile(ctx)
				if err != nil {
					return err
				}

				// Unchanged fields are re-sent from the current profile so
				// the full-replace endpoint does not clear them.
				req := domain.UpdateProfileRequest{
					Headline:        &current.Headline,
					Bio:             &current.Bio,
					Qualifications:  &current.Qualifications,
					ExperienceYears: &current.ExperienceYears,
					MonthlyRate:     current.MonthlyRate,
				}
				if cmd.Flags().Changed("headline") {
					req.Headline = &headline
				}
				if cmd.Flags().Changed("bio") {
					req.Bio = &bio
				}
				if cmd.Flags().Changed("qualifications") {
					req.Qualifications = &qualifications
				}
				if cmd.Flags().Changed("experience") {
					req.ExperienceYears = &experience
				}
				if cmd.Flags().Changed("rate") {
					req.MonthlyRate = &rateVal
				}

				if _, err := client.UpdateTutorProfile(ctx, token, req); err != nil {
					return err
				}
				fmt.Println(out.Success("Profile updated"))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&headline, "headline", "", "Profile headline")
	cmd.Flags().StringVar(&bio, "bio", "", "Profile bio")
	cmd.Flags().StringVar(&qualifications, "qualifications", "", "Qualifications")
	cmd.Flags().IntVar(&experience, "experience", 0, "Years of experience")
	cmd.Flags().Float64Var(&rateVal, "rate", 0, "Monthly rate")
	return cmd
}

func profileCatalogCmd(kind string, add, remove func(context.Context, string, int64) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind,
		Short: "Manage the " + kind + " on your profile",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a " + strings.TrimSuffix(kind, "s") + " by id",
			Args:  cobra.ExactArgs(1),
			RunE:  catalogAction(kind+".add", add),
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a " + strings.TrimSuffix(kind, "s") + " by id",
			Args:  cobra.ExactArgs(1),
			RunE:  catalogAction(kind+".remove", remove),
		},
	)
	return cmd
}

func catalogAction(op string, fn func(context.Context, string, int64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		token, err := requireToken()
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number")
		}

		return track(op, args[0], func(ctx context.Context) error {
			if err := fn(ctx, token, id); err != nil {
				return err
			}
			fmt.Println(out.Success("Done"))
			return nil
		})
	}
}
