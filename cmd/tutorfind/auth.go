package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/team13/tutorfind-cli/internal/domain"
)

func loginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}

			return track("login", email, func(ctx context.Context) error {
				resp, err := client.Login(ctx, email, password)
				if err != nil {
					return err
				}
				if err := store.Login(resp.User, resp.Token); err != nil {
					return err
				}
				fmt.Println(out.Success("Signed in as " + resp.User.Email))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Logout(); err != nil {
				return err
			}
			fmt.Println(out.Success("Signed out"))
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var req domain.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			role := domain.ParseRole(req.Role)
			if role != domain.RoleLearner && role != domain.RoleTutor {
				return fmt.Errorf("role must be LEARNER or TUTOR")
			}
			req.Role = string(role)

			var err error
			if req.Email == "" {
				req.Email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if req.Password == "" {
				req.Password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if req.Username == "" {
				req.Username = req.Email
			}

			return track("register", req.Email, func(ctx context.Context) error {
				user, err := client.Register(ctx, req)
				if err != nil {
					return err
				}
				fmt.Println(out.Success(fmt.Sprintf("Account created for %s (%s)", user.Email, user.Role)))
				fmt.Println("Run 'tutorfind login' to sign in.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password (prompted if omitted)")
	cmd.Flags().StringVar(&req.Role, "role", "LEARNER", "Account role: LEARNER or TUTOR")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Username, "username", "", "Username (defaults to email)")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(out.User(store.User()))
		},
	}
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return promptLine(label)
	}
	fmt.Print(label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
