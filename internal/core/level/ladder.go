// Package level defines the gamified leveling ladder and its evaluation
//
// The ladder is static, fixed data. Rung thresholds are validated by test,
// not at runtime
package level

// Rung is one level definition. A zero threshold means the requirement is
// unset and vacuously satisfied
type Rung struct {
	Level        int     `json:"level"`
	Name         string  `json:"name"`
	Requirements string  `json:"requirements"`
	MinProjects  int     `json:"minProjects,omitempty"`
	MinSkills    int     `json:"minSkills,omitempty"`
	MinHours     float64 `json:"minHours,omitempty"`
}

// Ladder is an ordered list of rungs, lowest first, levels strictly
// increasing from 1
type Ladder []Rung

// MaxLevelReached is the terminal next-requirements marker
const MaxLevelReached = "Max level reached"

// DefaultLadder returns DevGate's five-rung ladder
func DefaultLadder() Ladder {
	return Ladder{
		{Level: 1, Name: "Beginner", Requirements: "Join DevGate"},
		{Level: 2, Name: "Code Explorer", Requirements: "Complete 2 projects", MinProjects: 2},
		{Level: 3, Name: "Developer", Requirements: "Log 50 hours of coding", MinHours: 50},
		{
			Level: 4, Name: "Code Craftsman",
			Requirements: "Complete 5 projects & add 5 skills",
			MinProjects:  5, MinSkills: 5,
		},
		{
			Level: 5, Name: "Master Programmer",
			Requirements: "Log 200 hours & complete 10 projects",
			MinHours:     200, MinProjects: 10,
		},
	}
}

// Metrics are the derived numbers a user is leveled on
type Metrics struct {
	CompletedProjects int     `json:"completedProjects"`
	SkillCount        int     `json:"skillCount"`
	CodingHours       float64 `json:"codingHours"`
}

// Evaluation is the result of walking the ladder against a metrics snapshot
type Evaluation struct {
	Level            int    `json:"level"`
	Name             string `json:"name"`
	NextRequirements string `json:"nextRequirements"`
}

// satisfies reports whether m meets every threshold the rung sets
func (r Rung) satisfies(m Metrics) bool {
	if r.MinProjects > 0 && m.CompletedProjects < r.MinProjects {
		return false
	}
	if r.MinSkills > 0 && m.SkillCount < r.MinSkills {
		return false
	}
	if r.MinHours > 0 && m.CodingHours < r.MinHours {
		return false
	}
	return true
}

// Evaluate returns the highest rung satisfied contiguously from the bottom.
// Walking stops at the first unsatisfied rung: meeting a higher rung's
// thresholds never lets a user skip an unmet lower one
func (l Ladder) Evaluate(m Metrics) Evaluation {
	if len(l) == 0 {
		return Evaluation{Level: 1, NextRequirements: MaxLevelReached}
	}

	current := l[0]
	for _, r := range l[1:] {
		if !r.satisfies(m) {
			break
		}
		current = r
	}

	next := MaxLevelReached
	for i, r := range l {
		if r.Level == current.Level && i+1 < len(l) {
			next = l[i+1].Requirements
		}
	}
	return Evaluation{Level: current.Level, Name: current.Name, NextRequirements: next}
}
