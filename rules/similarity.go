package rules

import (
	"github.com/bluesky-social/botmod"
	"github.com/bluesky-social/botmod/helpers"
)

var _ botmod.ProfileRuleFunc = ContentSimilarityRule

// looks for repetitive content: the fraction of posts which are duplicates of another post, after text normalization. Profiles below the configured minimum post count are insufficient evidence and score 0.0.
func ContentSimilarityRule(c *botmod.ProfileContext) (float64, error) {
	posts := c.Account.Posts
	if len(posts) < c.Config().SimilarityMinPosts {
		return 0.0, nil
	}

	distinct := make(map[string]bool, len(posts))
	for _, post := range posts {
		distinct[helpers.HashOfString(helpers.NormalizeText(post.Text))] = true
	}
	uniqueness := float64(len(distinct)) / float64(len(posts))
	return 1.0 - uniqueness, nil
}
