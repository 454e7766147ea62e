package server

import (
	"encoding/json"

	"github.com/alimasry/go-version-registry/version"
)

// Request types sent by clients.
const (
	MsgAddFile    = "addFile"
	MsgAddVersion = "addVersion"
	MsgByDate     = "byDate"
	MsgByVersion  = "byVersion"
	MsgByState    = "byState"
	MsgFiles      = "files"
)

// Response types sent by the server.
const (
	MsgOK     = "ok"
	MsgResult = "result"
	MsgError  = "error"
)

// Error codes carried by MsgError responses.
const (
	CodeExists     = "exists"
	CodeNotFound   = "not_found"
	CodeEmpty      = "empty"
	CodeBadRequest = "bad_request"
)

// ClientMessage is a request from client to server. For addVersion an
// empty File appends to the registry's last file.
type ClientMessage struct {
	Type    string `json:"type"`
	ID      string `json:"id,omitempty"`
	File    string `json:"file,omitempty"`
	Number  int    `json:"number,omitempty"`
	State   string `json:"state,omitempty"`
	Date    string `json:"date,omitempty"`
	Label   string `json:"label,omitempty"`
	Content string `json:"content,omitempty"`
}

// ServerMessage is a response from server to client. ID echoes the
// request's ID.
type ServerMessage struct {
	Type     string        `json:"type"`
	ID       string        `json:"id,omitempty"`
	Versions []VersionInfo `json:"versions"`
	Files    []string      `json:"files,omitempty"`
	Code     string        `json:"code,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// VersionInfo is the wire form of a version.
type VersionInfo struct {
	File    string `json:"file"`
	Number  int    `json:"number"`
	State   string `json:"state"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

func versionInfos(vs []version.Version) []VersionInfo {
	out := make([]VersionInfo, len(vs))
	for i, v := range vs {
		out[i] = VersionInfo{
			File:    v.Label(),
			Number:  v.Number(),
			State:   v.State().String(),
			Date:    v.Date(),
			Content: v.Content(),
		}
	}
	return out
}

// Encode serializes a ServerMessage to JSON bytes.
func (m ServerMessage) Encode() []byte {
	b, _ := json.Marshal(m)
	return b
}
