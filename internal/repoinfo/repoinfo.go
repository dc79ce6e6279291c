// Package repoinfo derives a deployment subpath from the enclosing git repository.
package repoinfo

import (
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/pagesconf/internal/foundation/errors"
	"git.home.luguber.info/inful/pagesconf/internal/logfields"
)

// DefaultRemote is the remote whose URL names the published repository.
const DefaultRemote = "origin"

// pagesHostSuffix marks user and organization sites, which are served from the domain root.
const pagesHostSuffix = ".github.io"

// DetectBasePath opens the repository containing dir and returns the base path
// a project site for it is served under, e.g. "/docs" for owner/docs.git.
// User and organization sites (owner.github.io) return "".
func DetectBasePath(dir, remoteName string) (string, error) {
	remoteURL, err := RemoteURL(dir, remoteName)
	if err != nil {
		return "", err
	}
	slog.Debug("Read git remote", logfields.Remote(remoteName), logfields.URL(remoteURL))
	name, err := RepoName(remoteURL)
	if err != nil {
		return "", err
	}
	return BasePathForRepo(name), nil
}

// RemoteURL returns the first configured URL of remoteName for the repository containing dir.
func RemoteURL(dir, remoteName string) (string, error) {
	if remoteName == "" {
		remoteName = DefaultRemote
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryGit, "open repository").
			WithSeverity(errors.SeverityWarning).
			WithContext("dir", dir).
			Build()
	}
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryGit, "lookup remote").
			WithSeverity(errors.SeverityWarning).
			WithContext("remote", remoteName).
			Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", errors.GitError("remote has no URL").
			WithContext("remote", remoteName).
			Build()
	}
	return urls[0], nil
}

// RepoName extracts the repository name from a clone URL.
// Accepts https, ssh://, scp-like (git@host:owner/repo.git) and file URLs or plain paths.
func RepoName(remoteURL string) (string, error) {
	raw := strings.TrimSpace(remoteURL)
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Scheme != "file" && u.Host != "" {
		p = u.Path
	} else if u != nil && u.Scheme == "file" {
		p = u.Path
	} else if i := strings.Index(raw, ":"); i > 0 && !strings.Contains(raw[:i], "/") {
		// scp-like syntax: [user@]host:path
		p = raw[i+1:]
	}

	p = strings.TrimRight(p, "/")
	name := strings.TrimSuffix(path.Base(p), ".git")
	if name == "" || name == "." || name == "/" {
		return "", errors.GitError("cannot derive repository name from remote URL").
			WithContext("url", remoteURL).
			Build()
	}
	return name, nil
}

// BasePathForRepo maps a repository name to the subpath it is published under.
func BasePathForRepo(name string) string {
	if strings.HasSuffix(strings.ToLower(name), pagesHostSuffix) {
		return ""
	}
	return "/" + name
}
