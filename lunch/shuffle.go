package lunch

import (
	"fmt"
	"math/rand"
	"strings"
)

// shuffleVoters returns a uniformly random permutation of voters. The
// input is left untouched, so a finalize retried after a failed send still
// works from the original ledger.
func shuffleVoters(voters []Voter) []Voter {
	shuffled := make([]Voter, len(voters))
	copy(shuffled, voters)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// formatPriorityList renders voters as a 1-indexed numbered list, one
// voter per line.
func formatPriorityList(voters []Voter) string {
	lines := make([]string, len(voters))
	for i, v := range voters {
		lines[i] = fmt.Sprintf("%d.\t%s", i+1, v.DisplayName)
	}
	return strings.Join(lines, "\n")
}
