package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tmeadow/notechain/internal/config"
	"github.com/tmeadow/notechain/internal/link"
	"github.com/tmeadow/notechain/internal/logger"
	"github.com/tmeadow/notechain/internal/organize"
	"github.com/tmeadow/notechain/internal/ui"
	"github.com/tmeadow/notechain/internal/vault"
)

const version = "0.1.0"

func main() {
	cfg := config.Default()
	configExisted, err := config.LoadFile(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	vaultFlag := flag.String("vault", cfg.VaultPath, "path to vault directory")
	yes := flag.Bool("yes", false, "skip the organize confirmation prompt")
	mode := flag.Int("mode", 0, "linking mode: 1 per-folder, 2 vault-wide (skips the prompt)")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("notechain v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "organize", "link":
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	// First-run: no config file and no explicit --vault means we don't know
	// where the vault is yet. Ask once and persist the answer.
	if !configExisted && !flagProvided("vault") {
		res, err := config.RunSetup()
		if err != nil {
			fmt.Fprintln(os.Stderr, "setup failed:", err)
			os.Exit(1)
		}
		if res.Cancelled {
			os.Exit(0)
		}
		cfg.VaultPath = res.VaultPath
	} else {
		cfg.VaultPath = config.ExpandHome(*vaultFlag)
	}
	if abs, err := filepath.Abs(cfg.VaultPath); err == nil {
		cfg.VaultPath = abs
	}
	cfg.LogLevel = *logLevel

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	lg := logger.NewWithLevel(os.Stderr, level)

	v := vault.New(cfg.VaultPath)

	switch command {
	case "organize":
		os.Exit(runOrganize(v, lg, *yes))
	case "link":
		os.Exit(runLink(v, lg, *mode))
	}
}

func runOrganize(v *vault.Vault, lg *logger.Logger, assumeYes bool) int {
	if !v.Exists() {
		fmt.Fprintf(os.Stderr, "Error: directory %q not found\n", v.Root)
		return 1
	}

	fmt.Println(ui.TitleStyle.Render("notechain organizer"))
	fmt.Printf("Organizing notes in: %s\n", v.Root)

	if !assumeYes {
		ok, err := ui.Confirm("Do you want to proceed?")
		if err != nil {
			fmt.Fprintln(os.Stderr, "prompt failed:", err)
			return 1
		}
		if !ok {
			fmt.Println("Operation cancelled")
			return 0
		}
	}

	res, err := organize.New(v, lg).Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	fmt.Print(renderOrganizeSummary(res))
	return 0
}

func runLink(v *vault.Vault, lg *logger.Logger, modeFlag int) int {
	if !v.Exists() {
		fmt.Fprintf(os.Stderr, "Error: directory %q not found\n", v.Root)
		return 1
	}

	mode := ui.Mode(modeFlag)
	if mode == 0 {
		var err error
		mode, err = ui.ChooseMode(v.Root)
		if errors.Is(err, ui.ErrInvalidChoice) {
			fmt.Fprintln(os.Stderr, "Invalid choice")
			return 1
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "prompt failed:", err)
			return 1
		}
	}

	lk := link.New(v, lg)
	var res *link.Result
	var err error
	switch mode {
	case ui.ModeFolders:
		res, err = lk.LinkFolders()
	case ui.ModeVault:
		res, err = lk.LinkVault()
	default:
		fmt.Fprintln(os.Stderr, "Invalid choice")
		return 1
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	fmt.Print(renderLinkSummary(res))
	return 0
}

// flagProvided reports whether the named flag was set on the command line.
func flagProvided(name string) bool {
	provided := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			provided = true
		}
	})
	return provided
}

func printUsage() {
	usage := fmt.Sprintf(`notechain - organize and chain daily notes in a markdown vault

Usage:
  notechain [flags] <command>

Commands:
  organize    Move dated notes (M-D-YYYY.md) into YYYY-MM month folders,
              adding a leading heading where one is missing
  link        Append a "next note" link to each dated note, chaining
              notes in chronological order
  version     Show version information
  help        Show this help message

Flags:
  --vault PATH       vault directory (default from config)
  --yes              organize without asking for confirmation
  --mode 1|2         link without prompting: 1 per-folder, 2 vault-wide
  --log-level LEVEL  debug|info|warn|error

Examples:
  notechain organize
  notechain --vault ~/vault --yes organize
  notechain link
  notechain --mode 2 link

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
