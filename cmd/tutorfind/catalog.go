package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func subjectsCmd() *cobra.Command {
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List the subject catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return track("subjects", "", func(ctx context.Context) error {
				if byCategory {
					groups, err := client.SubjectsByCategory(ctx)
					if err != nil {
						return err
					}
					fmt.Print(out.SubjectsByCategory(groups))
					return nil
				}
				subjects, err := client.Subjects(ctx)
				if err != nil {
					return err
				}
				fmt.Print(out.Subjects(subjects))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&byCategory, "by-category", false, "Group subjects by category")
	return cmd
}

func citiesCmd() *cobra.Command {
	var districtsOf int64

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported cities and districts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return track("cities", "", func(ctx context.Context) error {
				if districtsOf != 0 {
					districts, err := client.DistrictsByCity(ctx, districtsOf)
					if err != nil {
						return err
					}
					fmt.Print(out.Districts(districts))
					return nil
				}
				cities, err := client.Cities(ctx)
				if err != nil {
					return err
				}
				fmt.Print(out.Cities(cities))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&districtsOf, "districts", 0, "Show the districts of this city id instead")
	return cmd
}
