package github

// Repo is an immutable snapshot of an organization repository, captured once
// per invocation.
type Repo struct {
	Owner string
	Name  string
	Stars int
	Forks int
}

// FullName returns the "owner/name" form.
func (r Repo) FullName() string {
	return r.Owner + "/" + r.Name
}
