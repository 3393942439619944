package classifier

import (
	"strings"
	"testing"

	"github.com/ckasturi/sift/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name          string
		content       string
		wantCategory  model.Category
		wantReview    bool
		minConfidence int
		maxConfidence int
	}{
		{
			name:          "otp template",
			content:       "Your OTP is 123456. Do not share this OTP with anyone. Valid for 10 minutes.",
			wantCategory:  model.CategoryTransactional,
			minConfidence: 85,
			maxConfidence: 95,
		},
		{
			name:          "transaction outcome",
			content:       "Dear customer, your payment of Rs 500 was successful. Transaction reference ABC123.",
			wantCategory:  model.CategoryTransactional,
			minConfidence: 80,
			maxConfidence: 95,
		},
		{
			name:          "promotional with urgency",
			content:       "Flat 50% off on all items! Hurry, limited time offer. Shop now!",
			wantCategory:  model.CategoryServiceExplicit,
			minConfidence: 75,
			maxConfidence: 95,
		},
		{
			name:          "promotional with amount",
			content:       "Get instant cashback offer upto 20% on your next purchase.",
			wantCategory:  model.CategoryServiceExplicit,
			minConfidence: 80,
			maxConfidence: 95,
		},
		{
			name:          "service status update",
			content:       "Dear customer, your application has been received and is being processed. Regards, Support Team.",
			wantCategory:  model.CategoryServiceImplicit,
			minConfidence: 30,
			maxConfidence: 95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.content)

			assert.Equal(t, tt.wantCategory, got.Category())
			assert.Equal(t, tt.wantReview, got.NeedsReview())
			assert.GreaterOrEqual(t, got.Confidence, tt.minConfidence)
			assert.LessOrEqual(t, got.Confidence, tt.maxConfidence)
			assert.NotEmpty(t, got.Evidence)
		})
	}
}

func TestClassifyEmptyContent(t *testing.T) {
	c := NewDefault()

	for _, content := range []string{"", "   ", "\t\n"} {
		got := c.Classify(content)
		assert.Equal(t, "Service-Implicit (Review)", got.Label)
		assert.Equal(t, 30, got.Confidence)
	}
}

func TestClassifyRandomText(t *testing.T) {
	c := NewDefault()

	got := c.Classify("xqzt plmbr wxyzk qqqrs mmnbv")

	assert.Equal(t, "Service-Implicit (Review)", got.Label)
	assert.Equal(t, 25, got.Confidence)
	require.Len(t, got.Evidence, 1)
	assert.Equal(t, "Random text detected - manual review required", got.Evidence[0])
}

func TestClassifyEvidenceNamesKeywords(t *testing.T) {
	c := NewDefault()

	got := c.Classify("Your OTP is 123456. Do not share with anyone.")

	require.NotEmpty(t, got.Evidence)
	var sawPrimary bool
	for _, e := range got.Evidence {
		if strings.HasPrefix(e, "Primary: ") {
			sawPrimary = true
		}
	}
	assert.True(t, sawPrimary, "evidence should name at least one primary keyword")
}

func TestClassifyConfidenceBounds(t *testing.T) {
	c := NewDefault()

	contents := []string{
		"Your OTP is 123456",
		"Flat 50% off today only",
		"Dear customer, your order has been delivered",
		"xqzt plmbr wxyzk qqqrs",
		"",
		"hello",
	}

	for _, content := range contents {
		got := c.Classify(content)
		assert.GreaterOrEqual(t, got.Confidence, 25, "content %q", content)
		assert.LessOrEqual(t, got.Confidence, 95, "content %q", content)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewDefault()
	content := "Get 20% discount on your next purchase. Limited time offer, shop now!"

	first := c.Classify(content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(content))
	}
}
