// Package authors resolves the author identity substituted into generated
// projects. The primary source is the user's global git configuration;
// the USER/USERNAME environment variables are the fallback.
package authors

import (
	"fmt"
	"os"

	gitconfig "github.com/go-git/go-git/v5/config"

	"github.com/arthur-debert/mason/pkg/errors"
	"github.com/arthur-debert/mason/pkg/logging"
)

// GetAuthors returns the username and the author display string
// ("Name <email>" when an email is configured). It fails when no identity
// can be found anywhere.
func GetAuthors() (username, authorString string, err error) {
	logger := logging.GetLogger("authors")

	name, email := fromGitConfig()
	if name == "" {
		name = fromEnv()
		logger.Debug().Str("user", name).Msg("No git identity, falling back to environment")
	}
	if name == "" {
		return "", "", errors.New(errors.ErrIdentity,
			"could not determine author: set user.name in your git configuration")
	}

	authorString = name
	if email != "" {
		authorString = fmt.Sprintf("%s <%s>", name, email)
	}

	logger.Debug().Str("username", name).Str("authors", authorString).Msg("Resolved author identity")
	return name, authorString, nil
}

// fromGitConfig reads user.name and user.email from the global git
// configuration. A missing or unreadable config is not an error here;
// it just yields empty values.
func fromGitConfig() (name, email string) {
	cfg, err := gitconfig.LoadConfig(gitconfig.GlobalScope)
	if err != nil {
		return "", ""
	}
	return cfg.User.Name, cfg.User.Email
}

func fromEnv() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return os.Getenv("USERNAME")
}
