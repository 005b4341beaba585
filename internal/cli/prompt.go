package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// PromptForConfig interactively asks for source directories and path aliases.
// Aliases are returned in the order they were entered.
func PromptForConfig() ([]string, []model.AliasEntry, error) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configure swift-precompiled (leave blank to accept defaults):")
	fmt.Fprintln(stdout)

	var dirList string
	dirPrompt := &survey.Input{
		Message: "Source directories",
		Help: fmt.Sprintf("Directories to scan for Swift sources, separated by %q. "+
			"Leave empty to scan the directory given on the command line.", string(os.PathListSeparator)),
	}
	if err := survey.AskOne(dirPrompt, &dirList); err != nil {
		return nil, nil, fmt.Errorf("failed to prompt for directories: %w", err)
	}
	dirs := splitDirList(dirList)

	var aliases []model.AliasEntry
	for {
		add := false
		confirm := &survey.Confirm{
			Message: "Add a path alias?",
			Help:    "An alias replaces a token such as $Assets inside directive paths.",
		}
		if err := survey.AskOne(confirm, &add); err != nil {
			return nil, nil, fmt.Errorf("failed to prompt for alias: %w", err)
		}
		if !add {
			break
		}

		alias, err := promptAlias(aliases)
		if err != nil {
			return nil, nil, err
		}
		aliases = append(aliases, alias)
	}

	return dirs, aliases, nil
}

// promptAlias asks for a single alias token and its target path.
func promptAlias(existing []model.AliasEntry) (model.AliasEntry, error) {
	var alias model.AliasEntry

	tokenPrompt := &survey.Input{
		Message: "Alias token",
		Help:    "Literal text replaced in directive paths, e.g. $Assets",
	}
	tokenOpt := survey.WithValidator(survey.ComposeValidators(survey.Required, aliasTokenValidator(existing)))
	if err := survey.AskOne(tokenPrompt, &alias.Token, tokenOpt); err != nil {
		return alias, fmt.Errorf("failed to prompt for alias token: %w", err)
	}

	targetPrompt := &survey.Input{
		Message: fmt.Sprintf("Path for %s", alias.Token),
		Help:    "Relative paths are resolved against the scanned source directory.",
	}
	if err := survey.AskOne(targetPrompt, &alias.Target, survey.WithValidator(survey.Required)); err != nil {
		return alias, fmt.Errorf("failed to prompt for alias path: %w", err)
	}

	return alias, nil
}

// aliasTokenValidator rejects tokens that cannot appear inside a quoted
// directive path or that were already entered.
func aliasTokenValidator(existing []model.AliasEntry) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return validateAliasToken(str, existing)
	}
}

// validateAliasToken checks a single alias token.
func validateAliasToken(token string, existing []model.AliasEntry) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("alias token cannot be empty")
	}
	if strings.ContainsAny(token, `"'`) {
		return fmt.Errorf("alias token cannot contain quotes")
	}
	for _, e := range existing {
		if e.Token == token {
			return fmt.Errorf("alias %s is already defined", token)
		}
	}
	return nil
}

// splitDirList splits an OS path list, dropping blank entries.
func splitDirList(list string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(list) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
