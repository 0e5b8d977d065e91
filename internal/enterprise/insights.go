package enterprise

import (
	"context"
	"fmt"
)

// Insight is one dashboard recommendation.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Actionable  bool   `json:"actionable"`
}

var defaultInsights = []Insight{
	{
		Title:       "Welcome to Your AI-Powered Dashboard",
		Description: "Your enterprise portal is now enhanced with AI insights. I'll provide real-time recommendations to optimize your operations.",
		Priority:    "low",
		Category:    "optimization",
		Actionable:  false,
	},
	{
		Title:       "Try Conversational Commands",
		Description: "Use natural language commands like \"Show pending QA tasks\" or \"Generate revenue report\" to interact with your data.",
		Priority:    "low",
		Category:    "optimization",
		Actionable:  false,
	},
}

var unavailableInsight = Insight{
	Title:       "AI Insights Temporarily Unavailable",
	Description: "We're working to restore AI insights. Basic dashboard functionality remains available.",
	Priority:    "low",
	Category:    "optimization",
	Actionable:  false,
}

// Insights derives dashboard recommendations from chat analytics and the
// escalation queue. With no data it returns the default onboarding
// insights; on storage failure, the unavailable notice.
func (i *Interpreter) Insights(ctx context.Context) []Insight {
	if i.store == nil {
		return defaultInsights
	}

	sum, err := i.store.AnalyticsSummary(ctx)
	if err != nil {
		i.logger.Warn("deriving insights failed")
		return []Insight{unavailableInsight}
	}

	var insights []Insight

	if sum.EscalationRate > 0.2 && sum.TotalEvents >= 10 {
		insights = append(insights, Insight{
			Title:       "High Escalation Rate Needs Attention",
			Description: fmt.Sprintf("%.0f%% of chatbot conversations triggered an escalation. Review the hand-off queue and consider expanding the knowledge base.", sum.EscalationRate*100),
			Priority:    "high",
			Category:    "risk",
			Actionable:  true,
		})
	}

	if len(sum.TopIntents) > 0 && sum.TopIntents[0].Intent == "pricing" && sum.TopIntents[0].Count >= 5 {
		insights = append(insights, Insight{
			Title:       "Pricing Questions Dominate",
			Description: fmt.Sprintf("Pricing was the top intent with %d detections. A clearer public pricing page could convert these visitors sooner.", sum.TopIntents[0].Count),
			Priority:    "medium",
			Category:    "opportunity",
			Actionable:  true,
		})
	}

	if sum.OpenEscalations > 0 {
		insights = append(insights, Insight{
			Title:       "Open Escalations Waiting",
			Description: fmt.Sprintf("%d escalated conversations are waiting for a human follow-up. Schedule time to work through the queue.", sum.OpenEscalations),
			Priority:    "medium",
			Category:    "team",
			Actionable:  true,
		})
	}

	if len(insights) == 0 {
		return defaultInsights
	}
	return insights
}
