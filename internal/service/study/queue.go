package study

import (
	"math"
	"sort"
	"time"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// StudyQueue walks a deck's cards in descending priority order. The order is
// fixed at construction; only the cursor moves. Not safe for concurrent use;
// the owning session serializes access.
type StudyQueue struct {
	ordered []*domain.Flashcard
	index   int
}

// NewStudyQueue scores every card once at now and sorts descending.
// The sort is stable: cards with equal scores keep their input order.
func NewStudyQueue(cards []*domain.Flashcard, now time.Time) *StudyQueue {
	type scored struct {
		card  *domain.Flashcard
		score float64
	}

	scoredCards := make([]scored, len(cards))
	for i, c := range cards {
		scoredCards[i] = scored{card: c, score: CardPriority(c, now)}
	}
	sort.SliceStable(scoredCards, func(i, j int) bool {
		return scoredCards[i].score > scoredCards[j].score
	})

	ordered := make([]*domain.Flashcard, len(scoredCards))
	for i, sc := range scoredCards {
		ordered[i] = sc.card
	}

	return &StudyQueue{ordered: ordered}
}

// Next returns the card at the cursor and advances. Returns nil without
// moving the cursor once the queue is exhausted, so the cursor never passes
// the queue length.
func (q *StudyQueue) Next() *domain.Flashcard {
	if q.index >= len(q.ordered) {
		return nil
	}
	card := q.ordered[q.index]
	q.index++
	return card
}

// Current returns the card at the cursor without advancing, or nil when the
// cursor is past the last card.
func (q *StudyQueue) Current() *domain.Flashcard {
	if q.index >= len(q.ordered) {
		return nil
	}
	return q.ordered[q.index]
}

// Previous steps the cursor back and returns the card it lands on.
// At position 0 it returns nil and stays put.
func (q *StudyQueue) Previous() *domain.Flashcard {
	if q.index == 0 {
		return nil
	}
	q.index--
	return q.ordered[q.index]
}

// HasNext reports whether Next would return a card.
func (q *StudyQueue) HasNext() bool { return q.index < len(q.ordered) }

// Reset moves the cursor back to the first card.
func (q *StudyQueue) Reset() { q.index = 0 }

// SetCurrentIndex moves the cursor to i. Out-of-range values are ignored:
// the call is a silent no-op, not a clamp.
func (q *StudyQueue) SetCurrentIndex(i int) {
	if i < 0 || i > len(q.ordered) {
		return
	}
	q.index = i
}

// Len returns the number of cards in the queue.
func (q *StudyQueue) Len() int { return len(q.ordered) }

// CurrentIndex returns the cursor position, in [0, Len()].
func (q *StudyQueue) CurrentIndex() int { return q.index }

// QueueDistribution buckets the entire queue by urgency. The buckets overlap:
// a hard card due today counts in both DueToday and Difficult, and Others is
// computed by subtraction, so it can go negative on heavily overlapping
// queues.
type QueueDistribution struct {
	Overdue   int
	DueToday  int
	Difficult int
	Others    int
}

// QueueStats describes the cursor's progress plus the distribution of the
// whole queue (completed cards included).
type QueueStats struct {
	Total        int
	Completed    int
	Remaining    int
	Percentage   int
	Distribution QueueDistribution
}

// Stats reports progress and the urgency distribution at the given time.
func (q *StudyQueue) Stats(now time.Time) QueueStats {
	total := len(q.ordered)
	completed := q.index

	var dist QueueDistribution
	for _, card := range q.ordered {
		if card.IsDue(now) {
			dist.Overdue++
		} else if !card.NextReview.After(now.Add(24 * time.Hour)) {
			dist.DueToday++
		}
		if card.Difficulty >= domain.DifficultyHard {
			dist.Difficult++
		}
	}
	dist.Others = total - dist.Overdue - dist.DueToday - dist.Difficult

	return QueueStats{
		Total:        total,
		Completed:    completed,
		Remaining:    total - completed,
		Percentage:   roundedPercent(completed, total),
		Distribution: dist,
	}
}

// QueueProgress is the 1-indexed display position. Current is Completed+1
// even at the end of the queue, so it can read one past Total there.
type QueueProgress struct {
	Current    int
	Total      int
	Percentage int
	Completed  int
	Remaining  int
}

// Progress reports the display position of the cursor.
func (q *StudyQueue) Progress() QueueProgress {
	total := len(q.ordered)
	completed := q.index
	return QueueProgress{
		Current:    completed + 1,
		Total:      total,
		Percentage: roundedPercent(completed, total),
		Completed:  completed,
		Remaining:  total - completed,
	}
}

func roundedPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
