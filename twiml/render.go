package twiml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Render serializes a Response to an XML document, including the XML
// declaration, as the voice provider expects.
func Render(resp *Response) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "Response"}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	for _, child := range resp.Children {
		if err := encodeNode(enc, child); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeNode(enc *xml.Encoder, node Node) error {
	switch n := node.(type) {
	case *Say:
		return encodeText(enc, "Say", n.Text, attrs("voice", n.Voice))
	case *Play:
		return encodeText(enc, "Play", n.URL, nil)
	case *Pause:
		return encodeEmpty(enc, "Pause", attrs("length", num(int(n.Length.Seconds()))))
	case *Gather:
		return encodeGather(enc, n)
	case *Record:
		return encodeEmpty(enc, "Record", attrs(
			"action", n.Action,
			"method", n.Method,
			"maxLength", num(int(n.MaxLength.Seconds())),
			"playBeep", strconv.FormatBool(n.PlayBeep),
		))
	case *Dial:
		return encodeText(enc, "Dial", n.Number, nil)
	case *Redirect:
		return encodeText(enc, "Redirect", n.URL, attrs("method", n.Method))
	case *Hangup:
		return encodeEmpty(enc, "Hangup", nil)
	default:
		return fmt.Errorf("cannot render TwiML node %T", node)
	}
}

func encodeGather(enc *xml.Encoder, g *Gather) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "Gather"},
		Attr: attrs(
			"action", g.Action,
			"method", g.Method,
			"numDigits", num(g.NumDigits),
			"timeout", num(int(g.Timeout.Seconds())),
		),
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range g.Children {
		if err := encodeNode(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func encodeText(enc *xml.Encoder, name, text string, attr []xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attr}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func encodeEmpty(enc *xml.Encoder, name string, attr []xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attr}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// attrs builds an attribute list from key/value pairs, skipping pairs
// with empty values so optional attributes stay out of the output.
func attrs(pairs ...string) []xml.Attr {
	var out []xml.Attr
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		out = append(out, xml.Attr{
			Name:  xml.Name{Local: pairs[i]},
			Value: pairs[i+1],
		})
	}
	return out
}

func num(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
