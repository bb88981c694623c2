package catalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AdventureBooking/internal/domain"
)

var reviewComments = []string{
	"Absolutely incredible experience! The guides were professional and the views were breathtaking. Highly recommended.",
	"Great value for money. A bit crowded but the organization was top notch.",
	"Once in a lifetime adventure. I was scared at first but the instructor made me feel so safe.",
	"The food provided was delicious and the equipment was brand new. Will definitely come back.",
	"A must-do if you are in the area. The sunset views were the highlight of my trip.",
	"Good experience overall, but the wait time was a bit longer than expected.",
	"Magical. Just magical. Words cannot describe how beautiful the scenery was.",
	"Professional team, great vibes, and an unforgettable memory.",
}

// ReviewMonthFormat формат даты отзыва ("March 2025")
const ReviewMonthFormat = "January 2006"

// GenerateReviews детерминированно строит 4-7 отзывов для активности.
// Даты отсчитываются назад от now с шагом 15 дней.
func GenerateReviews(activityID string, now time.Time) []domain.Review {
	if activityID == "" {
		return []domain.Review{}
	}

	seed, err := strconv.Atoi(activityID)
	if err != nil {
		seed = int(activityID[0])
	}

	count := 4 + int(activityID[0])%4
	reviews := make([]domain.Review, 0, count)

	for i := 0; i < count; i++ {
		var name, avatar string
		if i%2 == 0 {
			name = fmt.Sprintf("Alex %c.", rune('A'+i))
			avatar = fmt.Sprintf("https://randomuser.me/api/portraits/men/%d.jpg", 20+i)
		} else {
			name = fmt.Sprintf("Sarah %c.", rune('K'+i))
			avatar = fmt.Sprintf("https://randomuser.me/api/portraits/women/%d.jpg", 20+i)
		}

		rating := 5.0
		if i > 0 {
			rating = 4 + float64((seed+i)%10)/10
		}

		reviews = append(reviews, domain.Review{
			ID:           fmt.Sprintf("review-%s-%d", activityID, i),
			ActivityID:   activityID,
			AuthorName:   name,
			AuthorAvatar: avatar,
			Rating:       rating,
			Date:         now.AddDate(0, 0, -15*i).Format(ReviewMonthFormat),
			Comment:      reviewComments[(seed+i)%len(reviewComments)],
			HelpfulCount: (seed*7 + i*3) % 20,
		})
	}

	return reviews
}

// RatingBreakdown распределение оценок для блока отзывов
func RatingBreakdown() []domain.RatingBucket {
	return []domain.RatingBucket{
		{Stars: 5, Percentage: 80},
		{Stars: 4, Percentage: 15},
		{Stars: 3, Percentage: 3},
		{Stars: 2, Percentage: 1},
		{Stars: 1, Percentage: 1},
	}
}
