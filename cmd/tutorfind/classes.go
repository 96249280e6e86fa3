package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/domain"
)

func classesCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Browse and manage group classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return track("classes.list", status, func(ctx context.Context) error {
				classes, err := client.ListClasses(ctx, status)
				if err != nil {
					return err
				}
				fmt.Print(out.Classes(classes))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: OPEN, FULL, IN_PROGRESS, COMPLETED, CANCELLED")
	cmd.AddCommand(classShowCmd(), classCreateCmd(), classUpdateCmd(), classDeleteCmd(),
		classMineCmd(), classRosterCmd(), classEnrollCmd())
	return cmd
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s id must be a number", what)
	}
	return id, nil
}

func classShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one class in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "class")
			if err != nil {
				return err
			}
			return track("classes.show", args[0], func(ctx context.Context) error {
				class, err := client.ClassByID(ctx, id)
				if err != nil {
					return err
				}
				fmt.Print(out.Class(class))
				return nil
			})
		},
	}
}

func classCreateCmd() *cobra.Command {
	var req domain.CreateClassRequest
	var price float64
	var sessions, duration int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a class on one of your availability slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			if req.SubjectID == 0 || req.Name == "" || req.AvailabilitySlotID == 0 {
				return fmt.Errorf("--subject, --name and --slot are required")
			}
			if cmd.Flags().Changed("price") {
				req.PricePerSession = &price
			}
			if cmd.Flags().Changed("sessions") {
				req.TotalSessions = &sessions
			}
			if cmd.Flags().Changed("duration") {
				req.DurationMinutes = &duration
			}

			return track("classes.create", req.Name, func(ctx context.Context) error {
				class, err := client.CreateClass(ctx, token, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Class #%d created: %s", class.ID, class.Name)))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.SubjectID, "subject", 0, "Subject id")
	cmd.Flags().StringVar(&req.Name, "name", "", "Class name")
	cmd.Flags().StringVar(&req.Description, "description", "", "Class description")
	cmd.Flags().StringVar(&req.ClassType, "type", "GROUP", "Type: GROUP or INDIVIDUAL")
	cmd.Flags().IntVar(&req.MaxStudents, "max-students", 1, "Seat count")
	cmd.Flags().Int64Var(&req.AvailabilitySlotID, "slot", 0, "Availability slot id for the schedule")
	cmd.Flags().Float64Var(&price, "price", 0, "Price per session")
	cmd.Flags().IntVar(&sessions, "sessions", 0, "Total sessions")
	cmd.Flags().IntVar(&duration, "duration", 0, "Session length in minutes")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "End date, YYYY-MM-DD")
	return cmd
}

func classUpdateCmd() *cobra.Command {
	var name, description, status string
	var maxStudents int
	var price float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update one of your classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "class")
			if err != nil {
				return err
			}

			var req domain.UpdateClassRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("max-students") {
				req.MaxStudents = &maxStudents
			}
			if cmd.Flags().Changed("price") {
				req.PricePerSession = &price
			}
			if cmd.Flags().Changed("status") {
				req.Status = &status
			}

			return track("classes.update", args[0], func(ctx context.Context) error {
				class, err := client.UpdateClass(ctx, token, id, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Class #%d updated", class.ID)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Class name")
	cmd.Flags().StringVar(&description, "description", "", "Class description")
	cmd.Flags().IntVar(&maxStudents, "max-students", 0, "Seat count")
	cmd.Flags().Float64Var(&price, "price", 0, "Price per session")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	return cmd
}

func classDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "class")
			if err != nil {
				return err
			}
			return track("classes.delete", args[0], func(ctx context.Context) error {
				if err := client.DeleteClass(ctx, token, id); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Class #%d deleted", id)))
				return nil
			})
		},
	}
}

func classMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List classes you teach",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("classes.mine", "", func(ctx context.Context) error {
				classes, err := client.MyClasses(ctx, token)
				if err != nil {
					return err
				}
				fmt.Print(out.Classes(classes))
				return nil
			})
		},
	}
}

func classRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <id>",
		Short: "Show the enrolled learners for one of your classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "class")
			if err != nil {
				return err
			}
			return track("classes.roster", args[0], func(ctx context.Context) error {
				entries, err := client.ClassRoster(ctx, token, id)
				if err != nil {
					return err
				}
				fmt.Print(out.Roster(entries))
				return nil
			})
		},
	}
}

func classEnrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <id>",
		Short: "Enroll in an open class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "class")
			if err != nil {
				return err
			}
			return track("classes.enroll", args[0], func(ctx context.Context) error {
				enrollment, err := client.EnrollInClass(ctx, token, id)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Enrolled in %s (enrollment #%d)",
					enrollment.ClassName, enrollment.ID)))
				return nil
			})
		},
	}
}

func enrollmentsCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "enrollments",
		Short: "List and drop your class enrollments",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			return track("enrollments.list", status, func(ctx context.Context) error {
				enrollments, err := client.MyEnrollments(ctx, token, status)
				if err != nil {
					return err
				}
				fmt.Print(out.Enrollments(enrollments))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: ACTIVE, COMPLETED, DROPPED")
	cmd.AddCommand(&cobra.Command{
		Use:   "drop <id>",
		Short: "Drop an active enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken()
			if err != nil {
				return err
			}
			id, err := parseID(args[0], "enrollment")
			if err != nil {
				return err
			}
			return track("enrollments.drop", args[0], func(ctx context.Context) error {
				if err := client.DropEnrollment(ctx, token, id); err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Enrollment #%d dropped", id)))
				return nil
			})
		},
	})
	return cmd
}
