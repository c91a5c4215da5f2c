package profiles

import (
	"github.com/vanityhq/vanity-api/internal/platform/timeutil"
)

// Profile is the canonical profile representation on the wire. Field
// names match the stored documents for compatibility with every client
// revision; list fields are always arrays, never raw strings, and
// styling attributes always carry their defaults rather than null.
type Profile struct {
	ID              string        `json:"id"              doc:"Profile identifier"           example:"user-123"`
	Username        string        `json:"username"        doc:"Unique handle for /u/ pages"  example:"ada"`
	DisplayName     string        `json:"displayName"     doc:"Name shown on the page"       example:"Ada Lovelace"`
	Bio             string        `json:"bio"             doc:"Short biography"              example:"first programmer"`
	Links           []string      `json:"links"           doc:"Ordered list of profile links"`
	PfpURL          *string       `json:"pfpUrl"          doc:"Avatar image URL"`
	BannerURL       *string       `json:"bannerUrl"       doc:"Banner image URL"`
	BackgroundType  string        `json:"backgroundType"  doc:"Background style kind"        example:"default"`
	BackgroundValue string        `json:"backgroundValue" doc:"Background style value"       example:"default"`
	Font            string        `json:"font"            doc:"Page font"                    example:"default"`
	FontColor       string        `json:"fontColor"       doc:"Font color"                   example:"default"`
	SongEmbed       *string       `json:"songEmbed"       doc:"Embedded song URL"`
	AutoplaySong    bool          `json:"autoplaySong"    doc:"Autoplay the embedded song"`
	Cursor          string        `json:"cursor"          doc:"Cursor style"                 example:"default"`
	TrailEffect     bool          `json:"trailEffect"     doc:"Cursor trail effect toggle"`
	TrailColor      string        `json:"trailColor"      doc:"Cursor trail color"           example:"default"`
	HoverEffect     string        `json:"hoverEffect"     doc:"Link hover effect"            example:"default"`
	Layout          string        `json:"layout"          doc:"Page layout"                  example:"default"`
	Sections        []string      `json:"sections"        doc:"Ordered page sections"`
	UpdatedAt       timeutil.Time `json:"updatedAt"       doc:"Last write timestamp"         example:"2024-01-15T10:30:00.000Z"`
}
