package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/config"
)

var (
	serverFlag string
	yesFlag    bool
	authorFlag string
)

var rootCmd = &cobra.Command{
	Use:   "corkboard",
	Short: "A terminal client for the bulletin board",
	Long: `Corkboard is a terminal client for the bulletin board service.
Run it without arguments for the interactive feed, or use the
subcommands for scripting.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		if err := e.auth.Login(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s.\n", args[0])
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <username>",
	Short: "Register a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}
		if err := e.auth.Signup(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Println("Registered. Log in with 'corkboard login'.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		if err := e.auth.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Print the feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		view := e.sync.Refresh(cmd.Context())
		if view.Failed {
			return errors.New(strings.ToLower(strings.TrimSuffix(view.Placeholder, ".")))
		}
		if view.Placeholder != "" {
			fmt.Println(view.Placeholder)
			return nil
		}
		for _, item := range view.Items {
			fmt.Printf("#%d  %s  %s\n%s\n\n", item.Post.ID, item.Author, item.When, item.Content)
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Create a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		id, ok := e.store.Get()
		if !ok {
			return errors.New("not logged in")
		}
		if _, err := e.mutations.Create(cmd.Context(), id.Username, strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Println("Posted.")
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <content>",
	Short: "Replace a post's content",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		author := authorFlag
		if author == "" {
			id, ok := e.store.Get()
			if !ok {
				return errors.New("not logged in")
			}
			author = id.Username
		}
		if _, err := e.mutations.Update(cmd.Context(), postID, author, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Println("Updated.")
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q", args[0])
		}
		if !yesFlag && !confirm(fmt.Sprintf("Really delete post %d? [y/N] ", postID)) {
			fmt.Println("Kept.")
			return nil
		}
		if _, err := e.mutations.Delete(cmd.Context(), postID); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "server URL (overrides config)")
	editCmd.Flags().StringVar(&authorFlag, "author", "", "author to write on the post (defaults to the logged-in user)")
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, postsCmd, postCmd, editCmd, deleteCmd)
}

// loadEnv builds the client stack for one-shot commands. Missing config is
// fine here; defaults and environment cover it.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	return newEnv(cfg)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if os.Getenv("CORKBOARD_DEBUG") != "" {
		f, err := tea.LogToFile("corkboard.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// The feed logs refresh failures; without a log file those writes
		// would tear up the screen.
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var e *env
	if cfg != nil {
		if serverFlag != "" {
			cfg.ServerURL = serverFlag
		}
		if e, err = newEnv(cfg); err != nil {
			return err
		}
	}

	p := tea.NewProgram(initialModel(e))
	_, err = p.Run()
	return err
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(data), nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
