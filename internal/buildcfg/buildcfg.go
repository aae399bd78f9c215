// SPDX-License-Identifier: AGPL-3.0-or-later

// Package buildcfg derives the build configuration for the CRM frontend:
// the public base path assets are served under, the local dev-server port,
// and the browser auto-open flag.
package buildcfg

import "strings"

// BuildContext captures the CI signals relevant to base-path resolution.
// It is derived once per invocation and never read ambiently inside the
// resolver, so the resolution itself stays pure.
type BuildContext struct {
	// CI is true when the build runs inside GitHub Actions.
	CI bool
	// Repository is the repository short name (the part after the owner),
	// empty when unknown.
	Repository string
}

// ContextFromEnv derives a BuildContext from an environment lookup.
// Absent or malformed variables fall back to the local (non-CI) case;
// they are never an error.
func ContextFromEnv(lookup func(string) string) BuildContext {
	return BuildContext{
		CI:         lookup("GITHUB_ACTIONS") == "true",
		Repository: repoShortName(lookup("GITHUB_REPOSITORY")),
	}
}

// repoShortName extracts the repository name from an "owner/name"
// identifier. An identifier without a separator is used whole.
func repoShortName(id string) string {
	if i := strings.Index(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// ResolveBasePath returns the URL path prefix static assets are served
// under. On CI with a known repository the site is hosted under
// "/<repo>/"; everywhere else it sits at the root.
func ResolveBasePath(ctx BuildContext) string {
	if ctx.CI && ctx.Repository != "" {
		return "/" + ctx.Repository + "/"
	}
	return "/"
}
