package site

import "github.com/Dinujaya-Sandaruwan/c.dinujaya.me/internal/foundation/normalization"

// LinkPolicy is the builder reaction to a broken link.
type LinkPolicy string

const (
	LinkPolicyIgnore LinkPolicy = "ignore"
	LinkPolicyWarn   LinkPolicy = "warn"
	LinkPolicyThrow  LinkPolicy = "throw"
)

var linkPolicyNormalizer = normalization.New("link policy", map[string]LinkPolicy{
	"ignore": LinkPolicyIgnore,
	"warn":   LinkPolicyWarn,
	"throw":  LinkPolicyThrow,
}, LinkPolicyWarn)

// ParseLinkPolicy parses raw into a LinkPolicy. Empty input yields warn.
func ParseLinkPolicy(raw string) (LinkPolicy, error) {
	return linkPolicyNormalizer.Parse(raw)
}

// Valid reports whether p is one of ignore, warn or throw.
func (p LinkPolicy) Valid() bool { return linkPolicyNormalizer.Valid(p) }

// Position places a navbar item.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var positionNormalizer = normalization.New("navbar position", map[string]Position{
	"left":  PositionLeft,
	"right": PositionRight,
}, PositionLeft)

func ParsePosition(raw string) (Position, error) { return positionNormalizer.Parse(raw) }

func (p Position) Valid() bool { return positionNormalizer.Valid(p) }

// FooterStyle selects the footer color scheme.
type FooterStyle string

const (
	FooterStyleLight FooterStyle = "light"
	FooterStyleDark  FooterStyle = "dark"
)

var footerStyleNormalizer = normalization.New("footer style", map[string]FooterStyle{
	"light": FooterStyleLight,
	"dark":  FooterStyleDark,
}, FooterStyleLight)

func ParseFooterStyle(raw string) (FooterStyle, error) { return footerStyleNormalizer.Parse(raw) }

func (s FooterStyle) Valid() bool { return footerStyleNormalizer.Valid(s) }
