package user

import (
	"encoding/json"

	"bookshelf/internal/platform/jsonx"
)

// NotificationSettings is stored in notification_settings. A flag that was
// never set reads as enabled. Keys this type does not name are kept in Extra
// and written back unchanged.
type NotificationSettings struct {
	PriceAlert     *bool                      `json:"price_alert,omitempty"`
	NewBookAlert   *bool                      `json:"new_book_alert,omitempty"`
	ReviewReminder *bool                      `json:"review_reminder,omitempty"`
	Extra          map[string]json.RawMessage `json:"-"`
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func (n NotificationSettings) PriceAlertEnabled() bool     { return enabled(n.PriceAlert) }
func (n NotificationSettings) NewBookAlertEnabled() bool   { return enabled(n.NewBookAlert) }
func (n NotificationSettings) ReviewReminderEnabled() bool { return enabled(n.ReviewReminder) }

func (n NotificationSettings) MarshalJSON() ([]byte, error) {
	type plain NotificationSettings
	return jsonx.MarshalWithExtra(plain(n), n.Extra)
}

func (n *NotificationSettings) UnmarshalJSON(data []byte) error {
	type plain NotificationSettings
	var p plain
	extra, err := jsonx.UnmarshalWithExtra(data, &p, "price_alert", "new_book_alert", "review_reminder")
	if err != nil {
		return err
	}
	*n = NotificationSettings(p)
	n.Extra = extra
	return nil
}

// SocialLinks is stored in social_links. Unknown networks are kept in Extra.
type SocialLinks struct {
	Instagram string                     `json:"instagram,omitempty"`
	Facebook  string                     `json:"facebook,omitempty"`
	Twitter   string                     `json:"twitter,omitempty"`
	Extra     map[string]json.RawMessage `json:"-"`
}

func (l SocialLinks) MarshalJSON() ([]byte, error) {
	type plain SocialLinks
	return jsonx.MarshalWithExtra(plain(l), l.Extra)
}

func (l *SocialLinks) UnmarshalJSON(data []byte) error {
	type plain SocialLinks
	var p plain
	extra, err := jsonx.UnmarshalWithExtra(data, &p, "instagram", "facebook", "twitter")
	if err != nil {
		return err
	}
	*l = SocialLinks(p)
	l.Extra = extra
	return nil
}
