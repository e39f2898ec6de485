package domain

// Group keys with special placement in reports.
const (
	// GroupOther collects non-fork repositories without a primary language.
	GroupOther = "Other"
	// GroupForks collects forked repositories regardless of their language.
	GroupForks = "Forks"
)

// RepositoryLinkPrefix is prepended to a repository's full name to build its link.
const RepositoryLinkPrefix = "https://github.com/"
