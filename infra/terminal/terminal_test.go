package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/bhp/core/form"
)

func TestDisplay_Plain(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay(&buf)
	assert.False(t, d.Color)
	d.Render("Estimated Price: ₹85.5 Lakhs", form.StyleResult)
	assert.Equal(t, "Estimated Price: ₹85.5 Lakhs\n", buf.String())
}

func TestDisplay_Color(t *testing.T) {
	var buf bytes.Buffer
	d := &Display{Out: &buf, Color: true}
	d.Render("bad", form.StyleError)
	assert.Equal(t, ansiRed+"bad"+ansiReset+"\n", buf.String())
	buf.Reset()
	d.Render("ok", form.StyleResult)
	assert.Equal(t, ansiBlue+"ok"+ansiReset+"\n", buf.String())
}

func TestAlerter(t *testing.T) {
	var buf bytes.Buffer
	NewAlerter(&buf).Alert(form.LocationAlert)
	assert.Equal(t, form.LocationAlert+"\n", buf.String())
}

func TestOptions(t *testing.T) {
	var o Options
	for _, v := range []string{"Whitefield", "Hebbal"} {
		o.Append(v)
	}
	assert.Equal(t, 2, o.Len())
	assert.Equal(t, []string{"Whitefield", "Hebbal"}, o.Values())
	assert.Equal(t, "Hebbal", o.Resolve("2"))
	assert.Equal(t, "Whitefield", o.Resolve(" whitefield "))
	assert.Equal(t, "Koramangala", o.Resolve("Koramangala"))
	assert.Equal(t, "3", o.Resolve("3"))

	var buf bytes.Buffer
	assert.NoError(t, o.Print(&buf))
	assert.Equal(t, "  1) Whitefield\n  2) Hebbal\n", buf.String())
}
