package dashboard

import "strings"

const (
	stepSeparator = "|"

	// DefaultStepImage is used when a service has fewer image segments
	// than name segments.
	DefaultStepImage = "/images/default-service.png"
)

// Step is one positional (name, image) pair of a service.
type Step struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// DecodeSteps splits the pipe-delimited name and image fields of a
// service into ordered steps. Image segment i belongs to name segment i;
// missing or blank image segments fall back to fallback.
func DecodeSteps(
	name string,
	image string,
	images ImageResolver,
	fallback string,
) []Step {

	if strings.TrimSpace(name) == "" {
		return []Step{}
	}
	if images == nil {
		images = IdentityImages
	}
	if fallback == "" {
		fallback = DefaultStepImage
	}

	names := strings.Split(name, stepSeparator)

	var segments []string
	if strings.TrimSpace(image) != "" {
		segments = strings.Split(image, stepSeparator)
	}

	steps := make([]Step, 0, len(names))
	for i, n := range names {
		step := Step{Name: strings.TrimSpace(n), Image: fallback}
		if i < len(segments) {
			if seg := strings.TrimSpace(segments[i]); seg != "" {
				step.Image = images.Resolve(seg)
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// DisplayName joins step names for labels ("Cut, Wash, Style").
func DisplayName(steps []Step) string {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		if s.Name != "" {
			parts = append(parts, s.Name)
		}
	}
	return strings.Join(parts, ", ")
}
