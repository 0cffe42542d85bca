package config

import "github.com/chauffeurkit/bookform/pkg/schema"

const (
	// DefaultAccentColor is applied when a configuration omits or supplies an
	// unparseable accent color.
	DefaultAccentColor = "#2563eb"

	defaultLightBackground = "#ffffff"
	defaultDarkBackground  = "#111827"
)

func boolPtr(v bool) *bool { return &v }

// Defaults returns the compiled-in configuration every loaded document is
// merged over.
func Defaults() Definition {
	return Definition{
		Fields: schema.DefaultStructure(),
		Customizations: Customization{
			Title:           "Book Your Ride",
			Languages:       []string{"en"},
			DefaultLanguage: "en",
			PaymentIcons:    []string{"visa", "mastercard", "paypal", "cash"},
			AccentColor:     DefaultAccentColor,
			EnabledTypes:    []schema.BookingType{schema.BookingTypeDistance, schema.BookingTypeHourly},
			Layout: LayoutSettings{
				ContainerStyle:  "shadow",
				CornerRadius:    8,
				LightBackground: defaultLightBackground,
				DarkBackground:  defaultDarkBackground,
				DarkMode:        boolPtr(false),
				ButtonStyle:     "filled",
				ButtonPosition:  "right",
				Visibility: ComponentVisibility{
					BookingTypeSelector: boolPtr(true),
					LanguageSelector:    boolPtr(true),
					ProgressBar:         boolPtr(true),
					StepTitles:          boolPtr(true),
					FareDisplay:         boolPtr(true),
				},
				WaypointButton: WaypointButton{
					Enabled: boolPtr(true),
					EnabledForTypes: []schema.BookingType{
						schema.BookingTypeDistance,
						schema.BookingTypeOnDemand,
					},
					DisplayAfterField: "pickup_location",
				},
			},
		},
		Pricing: Pricing{
			Currency:    "USD",
			BaseFare:    5,
			CostPerKm:   1.5,
			CostPerMin:  0.4,
			CostPerHour: 60,
		},
	}
}
