package entities

import (
	"net/url"
	"regexp"
	"strings"
)

// URLKind is the transport a repository URL authenticates with.
type URLKind string

const (
	// URLKindSSH authenticates with a private key; credentials are never embedded.
	URLKindSSH URLKind = "ssh"
	// URLKindHTTPS authenticates with a bearer token embedded in the authority.
	URLKindHTTPS URLKind = "https"
)

const (
	gitSuffix          = ".git"
	credentialUser     = "oauth2"
	redactedCredential = "***"
	minPathSegments    = 2
)

// scpLikePattern matches user@host:owner/repo[.git][/].
var scpLikePattern = regexp.MustCompile(`^[^@\s/]+@([^:\s/]+):(/?[^/\s]+(?:/[^/\s]+)+)/?$`)

// RepositoryURL is a classified remote address together with the repository
// name derived from it. The zero value is not valid, build it with NewRepositoryURL.
type RepositoryURL struct {
	Kind URLKind
	Name string // Last path segment without a trailing ".git"
	URL  string // Original (SSH) or possibly credential-bearing (HTTPS) URL
}

// NewRepositoryURL classifies rawURL and derives its repository name. Anything
// that is not an SCP-like or ssh:// address is HTTPS-shaped, local paths and
// file:// or git:// URLs included. When a credential is given and rawURL is an
// http(s) address without an embedded credential, the returned URL carries
// "oauth2:<credential>@" in its authority. Other URLs are returned untouched.
func NewRepositoryURL(rawURL, credential string) (RepositoryURL, error) {
	if isSCPLike(rawURL) {
		if match := scpLikePattern.FindStringSubmatch(rawURL); match != nil {
			name := repositoryName(strings.Split(match[2], "/"))
			if !isValidName(name) {
				return RepositoryURL{}, NewInvalidURLFormatError(rawURL, "invalid repository name")
			}
			return RepositoryURL{Kind: URLKindSSH, Name: name, URL: rawURL}, nil
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return RepositoryURL{}, NewInvalidURLFormatError(rawURL, err.Error())
	}

	segments := nonEmptySegments(parsed.Path)
	if len(segments) < minPathSegments {
		return RepositoryURL{}, NewInvalidURLFormatError(rawURL, "expected at least owner/repo in path")
	}
	name := repositoryName(segments)
	if !isValidName(name) {
		return RepositoryURL{}, NewInvalidURLFormatError(rawURL, "invalid repository name")
	}

	kind := URLKindHTTPS
	if scheme := strings.ToLower(parsed.Scheme); scheme == "ssh" || scheme == "git+ssh" {
		kind = URLKindSSH
	}

	normalized := rawURL
	if credential != "" && acceptsCredential(parsed) {
		normalized = embedCredential(rawURL, credential)
	}

	return RepositoryURL{Kind: kind, Name: name, URL: normalized}, nil
}

// Redacted returns the URL with any embedded password or token masked, for logging.
func (r RepositoryURL) Redacted() string {
	return RedactURL(r.URL)
}

func (r RepositoryURL) String() string {
	return r.Redacted()
}

// RedactURL masks the secret part of the authority of rawURL. Anything that
// does not carry a "scheme://user:secret@" authority is returned unchanged.
func RedactURL(rawURL string) string {
	authStart, authEnd, ok := authorityBounds(rawURL)
	if !ok {
		return rawURL
	}
	authority := rawURL[authStart:authEnd]
	at := strings.LastIndex(authority, "@")
	if at < 0 {
		return rawURL
	}
	userinfo := authority[:at]
	user, _, hasSecret := strings.Cut(userinfo, ":")
	if !hasSecret {
		if user == "" {
			return rawURL
		}
		// a bare token used as user name is still a secret
		user = redactedCredential
		return rawURL[:authStart] + user + authority[at:] + rawURL[authEnd:]
	}
	return rawURL[:authStart] + user + ":" + redactedCredential + authority[at:] + rawURL[authEnd:]
}

// acceptsCredential reports whether a token can travel in the authority of parsed.
func acceptsCredential(parsed *url.URL) bool {
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

func isSCPLike(rawURL string) bool {
	return strings.Contains(rawURL, "@") &&
		strings.Contains(rawURL, ":") &&
		!strings.HasPrefix(rawURL, "http://") &&
		!strings.HasPrefix(rawURL, "https://")
}

// embedCredential rewrites the authority only, so scheme, path, query and
// fragment stay byte-identical to the input.
func embedCredential(rawURL, credential string) string {
	authStart, authEnd, ok := authorityBounds(rawURL)
	if !ok {
		return rawURL
	}
	authority := rawURL[authStart:authEnd]
	if strings.Contains(authority, "@") {
		return rawURL
	}
	return rawURL[:authStart] + credentialUser + ":" + credential + "@" + authority + rawURL[authEnd:]
}

// authorityBounds returns the byte range of the authority in "scheme://authority/...".
func authorityBounds(rawURL string) (int, int, bool) {
	idx := strings.Index(rawURL, "://")
	if idx < 0 {
		return 0, 0, false
	}
	start := idx + len("://")
	end := len(rawURL)
	if rel := strings.IndexAny(rawURL[start:], "/?#"); rel >= 0 {
		end = start + rel
	}
	return start, end, true
}

// isValidName rejects names that would not denote a child of the base path.
func isValidName(name string) bool {
	return name != "" && name != "." && name != ".."
}

func nonEmptySegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// repositoryName strips a true ".git" suffix from the last segment, leaving
// names such as "my.git.collection" intact.
func repositoryName(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return strings.TrimSuffix(segments[len(segments)-1], gitSuffix)
}
