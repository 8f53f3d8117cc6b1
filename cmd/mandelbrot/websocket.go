package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/willbeason/mandelbrot/pkg/viewer"
)

// request is a message from the browser.
type request struct {
	Type string `json:"type"`

	// recompute
	Params viewer.Params `json:"params"`

	// click
	X int `json:"x"`
	Y int `json:"y"`

	// preset and palette
	Name string `json:"name"`
}

// reply precedes every rendered frame, or reports a rejected request.
type reply struct {
	Type  string           `json:"type"`
	View  *viewer.Snapshot `json:"view,omitempty"`
	Error string           `json:"error,omitempty"`
}

var errUnknownRequest = errors.New("unknown request type")

// websocketHandler runs one viewer session per connection. Every accepted
// request is answered with a "view" reply and a binary PNG frame.
func (s *server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("got connection from: %s", r.RemoteAddr)

	err = s.serveSession(r.Context(), c)
	status := websocket.CloseStatus(err)
	if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
		log.Printf("%s disconnected", r.RemoteAddr)
		return
	}
	log.Printf("err: session %q: %v", r.RemoteAddr, err)
}

func (s *server) serveSession(ctx context.Context, c *websocket.Conn) error {
	sess, err := s.newSession()
	if err != nil {
		return err
	}

	err = sendView(ctx, c, sess)
	if err != nil {
		return err
	}

	for {
		var req request
		err := wsjson.Read(ctx, c, &req)
		if err != nil {
			return err
		}

		changed, err := apply(sess, req)
		if err != nil {
			err = wsjson.Write(ctx, c, reply{Type: "error", Error: err.Error()})
			if err != nil {
				return err
			}
			continue
		}
		if !changed {
			continue
		}

		err = sendView(ctx, c, sess)
		if err != nil {
			return err
		}
	}
}

// apply performs req on sess and reports whether the view needs redrawing.
func apply(sess *viewer.Session, req request) (bool, error) {
	switch req.Type {
	case "recompute":
		return true, sess.Recompute(req.Params)
	case "click":
		return sess.Click(req.X, req.Y), nil
	case "preset":
		return true, sess.SelectPreset(req.Name)
	case "palette":
		return true, sess.SelectPalette(req.Name)
	case "render":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", errUnknownRequest, req.Type)
}

func sendView(ctx context.Context, c *websocket.Conn, sess *viewer.Session) error {
	grid, err := sess.Render(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = grid.EncodePNG(&buf)
	if err != nil {
		return err
	}

	snap := sess.Snapshot()
	err = wsjson.Write(ctx, c, reply{Type: "view", View: &snap})
	if err != nil {
		return err
	}

	return c.Write(ctx, websocket.MessageBinary, buf.Bytes())
}
