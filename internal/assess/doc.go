// Package assess holds the questionnaire state and its scoring rules.
//
// A [Sheet] owns the twenty per-question scores. Totals are always
// recomputed from the scores and mapped onto an interpretation through the
// ordered [Bands] table:
//
//	s := assess.NewSheet()
//	sum, err := s.SetScore(3, 5)
//	fmt.Println(sum.Total, sum.Band.Label)
//
// # Thread Safety
//
// Sheet is NOT thread-safe. It is owned by a single update loop.
package assess
