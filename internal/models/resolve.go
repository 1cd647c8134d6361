package models

// EffectiveSettings is the fully resolved view a page renders from. Every
// field is concrete; optional fields resolve to "" when unset at every level.
type EffectiveSettings struct {
	BusinessName        string
	LogoText            string
	LogoURL             string
	PhoneNumber         string
	Email               string
	WhatsappNumber      string
	Address             string
	GoogleMapsReviewURL string
	PrimaryColor        string
	HeroImage           string
	ServiceImages       [6]string
	IsDemo              bool
	Slug                string
}

/// ResolveEffective collapses the per-field fallback chain into one view:
//
//	field          demo        site        literal
//	businessName   demo value  site value  DefaultBusinessName
//	logoText       demo value  site value  DefaultLogoText
//	logoUrl        demo value  site value  ""
//	phoneNumber    demo value  site value  DefaultPhoneNumber
//	email          demo value  site value  DefaultEmail
//	whatsappNumber demo value  site value  DefaultWhatsappNumber
//	address        demo value  site value  DefaultAddress
//	reviewUrl      demo value  site value  ""
//	primaryColor   demo value  site value  DefaultPrimaryColor
//	heroImage      demo value  —           ""
//	serviceNImage  demo value  —           ""
//
// A demo context takes the demo column when present; the default context
// skips straight to the site column. Either record may be nil.
func ResolveEffective(demo *Demo, site *SiteSettings) EffectiveSettings {
	eff := EffectiveSettings{
		BusinessName:   DefaultBusinessName,
		LogoText:       DefaultLogoText,
		PhoneNumber:    DefaultPhoneNumber,
		Email:          DefaultEmail,
		WhatsappNumber: DefaultWhatsappNumber,
		Address:        DefaultAddress,
		PrimaryColor:   DefaultPrimaryColor,
	}

	if site != nil {
		eff.BusinessName = site.BusinessName
		eff.LogoText = site.LogoText
		eff.LogoURL = Or(site.LogoURL, "")
		eff.PhoneNumber = site.PhoneNumber
		eff.Email = site.Email
		eff.WhatsappNumber = site.WhatsappNumber
		eff.Address = site.Address
		eff.GoogleMapsReviewURL = Or(site.GoogleMapsReviewURL, "")
		eff.PrimaryColor = site.PrimaryColor
	}

	if demo != nil {
		eff.IsDemo = true
		eff.Slug = demo.Slug
		eff.BusinessName = demo.BusinessName
		eff.LogoText = demo.LogoText
		eff.LogoURL = Or(demo.LogoURL, eff.LogoURL)
		eff.PhoneNumber = demo.PhoneNumber
		eff.Email = demo.Email
		eff.WhatsappNumber = demo.WhatsappNumber
		eff.Address = demo.Address
		eff.GoogleMapsReviewURL = Or(demo.GoogleMapsReviewURL, eff.GoogleMapsReviewURL)
		eff.PrimaryColor = demo.PrimaryColor
		eff.HeroImage = Or(demo.HeroImage, "")
		for i := 0; i < 6; i++ {
			eff.ServiceImages[i] = Or(demo.ServiceImage(i+1), "")
		}
	}

	return eff
}

// PagePath prefixes a site-relative path with the demo slug so links inside a
// demo stay inside it.
func (e EffectiveSettings) PagePath(path string) string {
	if !e.IsDemo {
		return path
	}
	if path == "/" {
		return "/" + e.Slug
	}
	return "/" + e.Slug + path
}
