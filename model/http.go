package model

type ChordResponse struct {
	Symbol      string   `json:"symbol"`
	Root        string   `json:"root"`
	Shorthand   string   `json:"shorthand"`
	Description string   `json:"description"`
	Notes       []string `json:"notes"`
	Midi        []int    `json:"midi"`
	ChordKey    string   `json:"chord_key"`
	NoteOn      []string `json:"note_on"`
	NoteOff     []string `json:"note_off"`
}

type KeyResponse struct {
	Key    string     `json:"key"`
	Chords [][]string `json:"chords"`
}

type NumeralResponse struct {
	Key     string   `json:"key"`
	Numeral string   `json:"numeral"`
	Notes   []string `json:"notes"`
}

type Shorthand struct {
	Shorthand   string `json:"shorthand"`
	Description string `json:"description"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
