// Package redirect decides which community destination a newly captured
// lead is funneled to. The rule set is deliberately tiny and evaluated in
// strict order: students first, then India, then everyone else.
package redirect

// Group names a community destination. These values are persisted with each
// application, so they must stay stable.
type Group string

const (
	GroupStudentChannel         Group = "student_channel"
	GroupIndiaCommunity         Group = "india_community"
	GroupInternationalCommunity Group = "international_community"
)

// Decision is the router's output: the matched group and its destination URL.
type Decision struct {
	Group Group
	URL   string
}

// URLMap supplies the destination URL for each group. It is read-only
// configuration injected at startup.
type URLMap map[Group]string

// Router maps (work experience, country code) to a Decision. It holds no
// mutable state and performs no I/O.
type Router struct {
	groups        URLMap
	mastermindURL string
}

// New builds a Router from the configured group URLs and the optional
// weekend mastermind URL (empty string when not configured).
func New(groups URLMap, mastermindURL string) *Router {
	return &Router{groups: groups, mastermindURL: mastermindURL}
}

// Route picks the destination group. First match wins: Students always get
// the student channel regardless of country; otherwise India routes to the
// India community; everyone else, including unknown or empty country codes,
// lands in the international community by design.
func (r *Router) Route(workExperience, countryCode string) Decision {
	switch {
	case workExperience == "Student":
		return Decision{Group: GroupStudentChannel, URL: r.groups[GroupStudentChannel]}
	case countryCode == "IN":
		return Decision{Group: GroupIndiaCommunity, URL: r.groups[GroupIndiaCommunity]}
	default:
		return Decision{Group: GroupInternationalCommunity, URL: r.groups[GroupInternationalCommunity]}
	}
}

// MastermindURL returns the secondary community URL when the lead opted in
// and a URL is configured, nil otherwise.
func (r *Router) MastermindURL(optedIn bool) *string {
	if !optedIn || r.mastermindURL == "" {
		return nil
	}
	url := r.mastermindURL
	return &url
}
