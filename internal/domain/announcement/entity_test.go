//go:build unit

package announcement_test

import (
	"strings"
	"testing"
	"time"

	"storefront-rules/internal/domain/announcement"
	"storefront-rules/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AnnouncementBuilder)
	errIs  error
}

func TestNewAnnouncement(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAnnouncementBuilder().Build()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Free delivery on orders above 500", actual.Text().String())
		assert.Equal(t, announcement.IconTruck, actual.IconType())
		assert.Equal(t, announcement.ColorToken("#FAB005"), actual.ColorToken())
		assert.True(t, actual.Active())
		assert.Nil(t, actual.StartTime())
		assert.Nil(t, actual.EndTime())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("text validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty text",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithText("") },
				errIs:  announcement.ErrEmptyText,
			},
			{
				name:   "whitespace only text",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithText("   ") },
				errIs:  announcement.ErrEmptyText,
			},
			{
				name:   "maximum length text",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithText(strings.Repeat("a", announcement.MaxTextLength)) },
			},
			{
				name:   "text exceeds maximum length",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithText(strings.Repeat("a", announcement.MaxTextLength+1)) },
				errIs:  announcement.ErrTextTooLong,
			},
		})
	})

	t.Run("icon validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase icon is normalized",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithIconType("sparkles") },
			},
			{
				name:   "unknown icon",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithIconType("ROCKET") },
				errIs:  announcement.ErrInvalidIconType,
			},
		})
	})

	t.Run("color token validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase hex is normalized",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithColorToken("#fab005") },
			},
			{
				name:   "missing hash prefix",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithColorToken("FAB005") },
				errIs:  announcement.ErrInvalidColorToken,
			},
			{
				name:   "short hex",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithColorToken("#FFF") },
				errIs:  announcement.ErrInvalidColorToken,
			},
		})
	})

	t.Run("window validation", func(t *testing.T) {
		start := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)

		runCases(t, []testCase{
			{
				name:   "start before end",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithWindow(&start, &end) },
			},
			{
				name:   "start equals end",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithWindow(&start, &start) },
			},
			{
				name:   "start after end",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithWindow(&end, &start) },
				errIs:  announcement.ErrInvalidWindow,
			},
			{
				name:   "start only",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithWindow(&start, nil) },
			},
			{
				name:   "end only",
				mutate: func(b *builder.AnnouncementBuilder) { b.WithWindow(nil, &end) },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAnnouncementBuilder().With(c.mutate).Build()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
