package form

import "math/rand"

// ResponsePool holds the literal answer pools for free-text questions.
type ResponsePool struct {
	short     []string
	paragraph []string
}

func NewResponsePool() *ResponsePool {
	return &ResponsePool{
		short: []string{
			"Yes", "No", "Maybe", "Sometimes", "Often", "Rarely",
			"Good", "Bad", "Excellent", "Fair", "Poor", "Average",
			"High", "Low", "Medium", "Fast", "Slow", "Normal",
			"Happy", "Sad", "Excited", "Bored", "Tired", "Energetic",
			"Hot", "Cold", "Warm", "Cool", "Dry", "Wet",
		},
		paragraph: []string{
			"This is a detailed response that provides comprehensive information about the topic.",
			"Based on my experience and knowledge, I believe this is the best approach.",
			"The situation requires careful consideration of multiple factors and perspectives.",
			"I have thoroughly analyzed the options and reached this conclusion.",
			"This solution takes into account various aspects and potential outcomes.",
			"After careful evaluation, I recommend this particular approach.",
			"The data suggests that this is the most effective solution.",
			"Based on current trends and patterns, this seems to be the optimal choice.",
			"This approach aligns well with established best practices.",
			"The evidence supports this particular course of action.",
		},
	}
}

// Short returns a random short answer.
func (p *ResponsePool) Short() string {
	return p.short[rand.Intn(len(p.short))]
}

// Paragraph returns a random long-form answer.
func (p *ResponsePool) Paragraph() string {
	return p.paragraph[rand.Intn(len(p.paragraph))]
}
