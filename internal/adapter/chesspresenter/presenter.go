package chesspresenter

import (
	"strings"

	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

// Presenter delivers formatted messages and board images without coupling to the input loop.
type Presenter struct {
	sendMessage func(message string) error
	sendImage   func(sessionID string, png []byte) error
}

func NewPresenter(sendMessage func(message string) error, sendImage func(sessionID string, png []byte) error) *Presenter {
	return &Presenter{
		sendMessage: sendMessage,
		sendImage:   sendImage,
	}
}

// Board sends message, then the text board, then the PNG when one was rendered.
func (p *Presenter) Board(message string, state *chessdto.SessionState) error {
	if p == nil {
		return nil
	}

	if text := strings.TrimSpace(message); text != "" && p.sendMessage != nil {
		if err := p.sendMessage(message); err != nil {
			return err
		}
	}

	if state == nil {
		return nil
	}

	if state.BoardText != "" && p.sendMessage != nil {
		if err := p.sendMessage(state.BoardText); err != nil {
			return err
		}
	}

	if len(state.BoardImage) > 0 && p.sendImage != nil {
		if err := p.sendImage(state.SessionID, state.BoardImage); err != nil {
			return err
		}
	}

	return nil
}
