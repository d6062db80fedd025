package application

import (
	"regexp"
	"strings"
)

var (
	storyPattern = regexp.MustCompile(`(?i)^As a .*?, I want to .*?, so that .*`)
	lineBreak    = regexp.MustCompile(`\r\n|\r|\n`)
)

// ParseUserStories extracts "As a ..., I want to ..., so that ..." lines
// from free model text. The result is best effort: lines that do not match
// are dropped, nothing is deduplicated and the count is whatever was found.
func ParseUserStories(text string) []string {
	stories := []string{}
	for _, line := range lineBreak.Split(text, -1) {
		line = strings.TrimSpace(line)
		if storyPattern.MatchString(line) {
			stories = append(stories, line)
		}
	}
	return stories
}
