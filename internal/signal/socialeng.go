package signal

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/clarionhq/clarion/internal/model"
	"github.com/clarionhq/clarion/internal/text"
)

var urgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(act now|act immediately|within 24 hours|within 48 hours)\b`),
	regexp.MustCompile(`(?i)\b(urgent|asap|right away|don't wait)\b`),
	regexp.MustCompile(`(?i)\b(limited time|expires soon|last chance)\b`),
	regexp.MustCompile(`(?i)\baccount (will be|has been) (suspended|closed|locked)\b`),
	regexp.MustCompile(`(?i)\b(verify|confirm) (now|immediately)\b`),
}

var authorityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(IRS|Internal Revenue Service|tax (authority|office))\b`),
	regexp.MustCompile(`(?i)\b(bank|credit union|financial institution)\b`),
	regexp.MustCompile(`(?i)\b(police|FBI|law enforcement|government)\b`),
	regexp.MustCompile(`(?i)\b(tech support|Microsoft|Apple|Amazon)\b`),
	regexp.MustCompile(`(?i)\b(Social Security|SSA|Medicare)\b`),
}

var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(password|login|credentials|account (details|info))\b`),
	regexp.MustCompile(`(?i)\bverify your (identity|account|email)\b`),
	regexp.MustCompile(`(?i)\bclick (here|below) to (log in|verify|confirm)\b`),
	regexp.MustCompile(`(?i)\benter your (password|PIN|SSN)\b`),
}

var moneyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(wire (transfer|money)|send (money|cash))\b`),
	regexp.MustCompile(`(?i)\b(gift card|iTunes card|Google Play card)\b`),
	regexp.MustCompile(`(?i)\b(pay (now|immediately)|payment (required|due))\b`),
	regexp.MustCompile(`(?i)\b(bitcoin|crypto|cryptocurrency)\b`),
	regexp.MustCompile(`(?i)\b(prize|winner|you've won|claim your)\b`),
}

var genericGreeting = regexp.MustCompile(`(?i)\bdear (customer|user|valued)\b`)

// SocialEngineering scores manipulation pressure: urgency, authority
// impersonation, credential and money requests.
type SocialEngineering struct{}

// NewSocialEngineering creates the manipulation detector
func NewSocialEngineering() *SocialEngineering { return &SocialEngineering{} }

// Kind implements Detector.
func (d *SocialEngineering) Kind() model.SignalKind { return model.SignalSocialEngineering }

// Detect counts indicator-family matches and blends them into [0,1].
// Urgency and credential pressure dominate the weighting; either family
// saturated alone pushes the score past 0.5.
func (d *SocialEngineering) Detect(_ context.Context, input string) model.SignalResult {
	result := model.SignalResult{Kind: d.Kind()}
	if strings.TrimSpace(input) == "" {
		return result
	}

	urgency := countPatternHits(input, urgencyPatterns)
	authority := countPatternHits(input, authorityPatterns)
	credential := countPatternHits(input, credentialPatterns)
	money := countPatternHits(input, moneyPatterns)
	urls := text.ExtractURLs(input)
	greeting := genericGreeting.MatchString(input)

	var triggers []string
	if urgency >= 2 {
		triggers = append(triggers, fmt.Sprintf("strong urgency pressure (%d patterns)", urgency))
	} else if urgency == 1 {
		triggers = append(triggers, "urgency language detected")
	}
	if authority >= 1 {
		triggers = append(triggers, "possible authority impersonation")
	}
	if credential >= 2 {
		triggers = append(triggers, "multiple credential/verification requests")
	} else if credential == 1 {
		triggers = append(triggers, "request for login/verification")
	}
	if money >= 1 {
		triggers = append(triggers, "money/gift card/crypto request")
	}
	if len(urls) > 0 {
		triggers = append(triggers, fmt.Sprintf("links present (%d URL(s))", len(urls)))
	}
	if greeting {
		triggers = append(triggers, "generic greeting (common in phishing)")
	}

	score := 0.0
	score += minf(0.50, float64(urgency)*0.25)
	score += minf(0.50, float64(credential)*0.25)
	score += minf(0.20, float64(authority)*0.20)
	score += minf(0.25, float64(money)*0.25)
	if len(urls) > 0 {
		score += 0.10
	}
	if greeting {
		score += 0.10
	}

	result.Score = clamp01(score)
	result.Triggers = triggers
	return result
}
