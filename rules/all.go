package rules

import (
	"github.com/bluesky-social/botmod"
)

func DefaultRules() botmod.RuleSet {
	rules := botmod.RuleSet{
		ProfileRules: []botmod.ProfileRule{
			{Name: botmod.RulePostFrequency, Check: PostFrequencyRule},
			{Name: botmod.RuleContentSimilarity, Check: ContentSimilarityRule},
			{Name: botmod.RuleNetworkInteraction, Check: NetworkInteractionRule},
			{Name: botmod.RuleAccountAge, Check: AccountAgeRule},
		},
	}
	return rules
}
