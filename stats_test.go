package spread

import "testing"

func sampleWords() []Word {
	return []Word{
		{Text: "Once", LengthBucket: Short, FollowingPunct: PunctNone},
		{Text: "upon,", LengthBucket: Short, FollowingPunct: PunctComma},
		{Text: "a", LengthBucket: Short, FollowingPunct: PunctNone},
		{Text: "midnight", LengthBucket: Medium, FollowingPunct: PunctNone},
		{Text: "dreary.", LengthBucket: Medium, FollowingPunct: PunctPeriod},
		{Text: "pondering", LengthBucket: Long, FollowingPunct: PunctParagraph},
	}
}

func TestNewChapterStats_Histograms(t *testing.T) {
	stats := newChapterStats(sampleWords())

	if stats.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", stats.WordCount)
	}
	if got, want := stats.LengthCounts, [numLengthBuckets]int{3, 2, 1, 0}; got != want {
		t.Errorf("LengthCounts = %v, want %v", got, want)
	}
	if got, want := stats.PunctCounts, [numPunctClasses]int{3, 1, 1, 1}; got != want {
		t.Errorf("PunctCounts = %v, want %v", got, want)
	}
}

func TestNewChapterStats_HistogramSlotsSumToWordCount(t *testing.T) {
	stats := newChapterStats(sampleWords())

	lengthSum, punctSum := 0, 0
	for _, n := range stats.LengthCounts {
		lengthSum += n
	}
	for _, n := range stats.PunctCounts {
		punctSum += n
	}
	if lengthSum != stats.WordCount {
		t.Errorf("length histogram sums to %d, want %d", lengthSum, stats.WordCount)
	}
	if punctSum != stats.WordCount {
		t.Errorf("punct histogram sums to %d, want %d", punctSum, stats.WordCount)
	}
}

func TestNewChapterStats_Empty(t *testing.T) {
	stats := newChapterStats(nil)
	if stats != (ChapterStats{}) {
		t.Errorf("newChapterStats(nil) = %+v, want zero value", stats)
	}
}

func TestChapterStatsMerge_Commutative(t *testing.T) {
	a := newChapterStats(sampleWords())
	b := newChapterStats(sampleWords()[:3])

	ab := a
	ab.merge(b)
	ba := b
	ba.merge(a)

	if ab != ba {
		t.Errorf("merge is not commutative: a+b = %+v, b+a = %+v", ab, ba)
	}
	if ab.WordCount != a.WordCount+b.WordCount {
		t.Errorf("merged WordCount = %d, want %d", ab.WordCount, a.WordCount+b.WordCount)
	}
}

func TestNewBookStats_TotalsMatchChapterSums(t *testing.T) {
	chapters := []Chapter{
		{Index: 0, Title: "Chapter 1", Words: sampleWords(), Stats: newChapterStats(sampleWords())},
		{Index: 2, Title: "Chapter 3", Words: sampleWords()[:2], Stats: newChapterStats(sampleWords()[:2])},
	}
	stats := newBookStats(chapters)

	if stats.TotalWords != 8 {
		t.Errorf("TotalWords = %d, want 8", stats.TotalWords)
	}
	if stats.Aggregated.WordCount != stats.TotalWords {
		t.Errorf("Aggregated.WordCount = %d, want TotalWords %d", stats.Aggregated.WordCount, stats.TotalWords)
	}
}

func TestNewBookStats_OrderIndependent(t *testing.T) {
	c1 := Chapter{Stats: newChapterStats(sampleWords())}
	c2 := Chapter{Stats: newChapterStats(sampleWords()[:4])}

	forward := newBookStats([]Chapter{c1, c2})
	backward := newBookStats([]Chapter{c2, c1})
	if forward != backward {
		t.Errorf("book stats depend on chapter order: %+v vs %+v", forward, backward)
	}
}

func TestNewBookStats_NoChapters(t *testing.T) {
	stats := newBookStats(nil)
	if stats.TotalWords != 0 {
		t.Errorf("TotalWords = %d, want 0", stats.TotalWords)
	}
}
