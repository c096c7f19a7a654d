package spread

// newChapterStats builds the classification histograms for a word sequence.
func newChapterStats(words []Word) ChapterStats {
	var stats ChapterStats
	stats.WordCount = len(words)
	for _, w := range words {
		stats.LengthCounts[w.LengthBucket]++
		stats.PunctCounts[w.FollowingPunct]++
	}
	return stats
}

// merge adds other's counts into s. Merging is commutative and
// associative, so chapter order does not affect book-level totals.
func (s *ChapterStats) merge(other ChapterStats) {
	s.WordCount += other.WordCount
	for i := range s.LengthCounts {
		s.LengthCounts[i] += other.LengthCounts[i]
	}
	for i := range s.PunctCounts {
		s.PunctCounts[i] += other.PunctCounts[i]
	}
}

// newBookStats reduces all chapters' stats into book-level totals.
func newBookStats(chapters []Chapter) BookStats {
	var aggregated ChapterStats
	for i := range chapters {
		aggregated.merge(chapters[i].Stats)
	}
	return BookStats{
		TotalWords: aggregated.WordCount,
		Aggregated: aggregated,
	}
}
