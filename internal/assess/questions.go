package assess

const (
	// NumQuestions is the fixed size of the questionnaire.
	NumQuestions = 20
	MinScore     = 1
	MaxScore     = 5

	MinTotal = NumQuestions * MinScore
	MaxTotal = NumQuestions * MaxScore
)

var questions = [NumQuestions]string{
	"1. Timing",
	"2. Emotional Manipulation",
	"3. Uniform Messaging",
	"4. Missing Information",
	"5. Simplistic Narratives",
	"6. Tribal Division",
	"7. Authority Overload",
	"8. Call for Urgent Action",
	"9. Overuse of Novelty",
	"10. Financial/Political Gain",
	"11. Suppression of Dissent",
	"12. False Dilemmas",
	"13. Bandwagon Effect",
	"14. Emotional Repetition",
	"15. Cherry-Picked Data",
	"16. Logical Fallacies",
	"17. Manufactured Outrage",
	"18. Framing Techniques",
	"19. Rapid Behavior Shifts",
	"20. Historical Parallels",
}

// Questions returns the question texts in display order.
func Questions() []string {
	out := make([]string, NumQuestions)
	copy(out, questions[:])
	return out
}

// Question returns the text for index i, or "" when i is out of range.
func Question(i int) string {
	if i < 0 || i >= NumQuestions {
		return ""
	}
	return questions[i]
}
