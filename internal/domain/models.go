package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PlaybackState represents what the overlay is currently showing
type PlaybackState string

const (
	// StateLoading is the initial state before the first poll completes
	StateLoading PlaybackState = "Loading"
	// StateNothingPlaying indicates the server reported no current track
	StateNothingPlaying PlaybackState = "NothingPlaying"
	// StatePlaying indicates a track is displayed
	StatePlaying PlaybackState = "Playing"
)

// SongID is the opaque track identifier used as the change-detection key.
// The server may send it as a JSON string or number; both decode to the same text.
type SongID string

// UnmarshalJSON accepts string and numeric identifiers
func (id *SongID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = SongID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("song_id is neither string nor number: %s", string(data))
	}
	*id = SongID(n.String())
	return nil
}

// TrackInfo contains information about the track the server is playing
type TrackInfo struct {
	// SongID identifies the track on the server
	SongID SongID `json:"song_id"`
	// Title of the track (untrusted, escape before markup)
	Title string `json:"title"`
	// Artist name
	Artist string `json:"artist"`
	// Album name
	Album string `json:"album"`
}

// QueryResult is the decoded server response for a single poll.
// A nil NowPlaying means nothing is playing, or the response was unusable.
type QueryResult struct {
	NowPlaying *TrackInfo
}

// ControlAction is a user-triggered playback command
type ControlAction string

const (
	ActionPlay ControlAction = "play"
	ActionStop ControlAction = "stop"
	ActionSkip ControlAction = "skip"
)

// Mode returns the value the server expects in the mode query parameter
func (a ControlAction) Mode() (string, error) {
	switch a {
	case ActionPlay:
		return "start", nil
	case ActionStop:
		return "stop", nil
	case ActionSkip:
		return "skip", nil
	default:
		return "", fmt.Errorf("unknown control action: %q", string(a))
	}
}

// IntentKind enumerates the rendering commands produced by the monitor
type IntentKind string

const (
	IntentShowArtwork    IntentKind = "ShowArtwork"
	IntentClearArtwork   IntentKind = "ClearArtwork"
	IntentShowText       IntentKind = "ShowText"
	IntentSetWindowTitle IntentKind = "SetWindowTitle"
	IntentSetWindowIcon  IntentKind = "SetWindowIcon"
)

// Intent is a single display command for the renderer.
// Text holds markup for ShowText and plain text for SetWindowTitle.
// Data holds image bytes for ShowArtwork and SetWindowIcon.
// Track is set on the ShowText intent describing a newly rendered track.
type Intent struct {
	Kind  IntentKind
	Text  string
	Data  []byte
	Align Alignment
	Track *TrackInfo
}

// ShowArtwork builds an intent displaying the given image bytes
func ShowArtwork(data []byte) Intent {
	return Intent{Kind: IntentShowArtwork, Data: data}
}

// ClearArtwork builds an intent removing the displayed image
func ClearArtwork() Intent {
	return Intent{Kind: IntentClearArtwork}
}

// ShowText builds an intent replacing the label with markup-safe text
func ShowText(markup string, align Alignment) Intent {
	return Intent{Kind: IntentShowText, Text: markup, Align: align}
}

// ShowTrack is ShowText annotated with the track it describes
func ShowTrack(markup string, align Alignment, track TrackInfo) Intent {
	in := ShowText(markup, align)
	in.Track = &track
	return in
}

// SetWindowTitle builds an intent for the host window title
func SetWindowTitle(title string) Intent {
	return Intent{Kind: IntentSetWindowTitle, Text: title}
}

// SetWindowIcon builds an intent for the host window icon
func SetWindowIcon(data []byte) Intent {
	return Intent{Kind: IntentSetWindowIcon, Data: data}
}

// Anchor is a position along one axis
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorCenter Anchor = "center"
	AnchorEnd    Anchor = "end"
)

// Justification is the text justification used for a label alignment
type Justification string

const (
	JustifyLeft   Justification = "left"
	JustifyCenter Justification = "center"
	JustifyRight  Justification = "right"
)

// Alignment is a placement keyword accepted on the command line
type Alignment string

// Placement is the resolved form of an Alignment
type Placement struct {
	Horizontal Anchor
	Vertical   Anchor
	Justify    Justification
}

var alignments = map[Alignment]Placement{
	"bottom":        {AnchorStart, AnchorEnd, JustifyLeft},
	"top":           {AnchorStart, AnchorStart, JustifyLeft},
	"center":        {AnchorCenter, AnchorCenter, JustifyCenter},
	"center-bottom": {AnchorCenter, AnchorEnd, JustifyCenter},
	"center-top":    {AnchorCenter, AnchorStart, JustifyCenter},
	"top-right":     {AnchorEnd, AnchorStart, JustifyRight},
	"bottom-right":  {AnchorEnd, AnchorEnd, JustifyRight},
}

// ParseAlignment validates an alignment keyword
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := alignments[a]; !ok {
		return "", fmt.Errorf("invalid alignment %q", s)
	}
	return a, nil
}

// Placement resolves the keyword. Unknown keywords resolve to top-left.
func (a Alignment) Placement() Placement {
	if p, ok := alignments[a]; ok {
		return p
	}
	return Placement{AnchorStart, AnchorStart, JustifyLeft}
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
