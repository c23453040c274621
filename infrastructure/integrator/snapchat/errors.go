package snapchat

import "errors"

var ErrMissingCampaignID = errors.New("ad squad draft has no campaign_id")
