//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	btns   *pinButtons
	clk    *tinyGoClock
	cal    *rtcCalendar
	surf   *monoSurface
}

// New returns the HAL for the Pico watch board.
//
// I2C0 on GP4 (SDA) / GP5 (SCL): SSD1306 OLED at 0x3C, DS3231 RTC at 0x68.
// Buttons on GP14 (primary) / GP15 (secondary), active low, internal
// pull-ups. UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       machine.GP4,
		SCL:       machine.GP5,
		Frequency: 400 * machine.KHz,
	})

	oled := ssd1306.NewI2C(machine.I2C0)
	oled.Configure(ssd1306.Config{
		Width:    128,
		Height:   64,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	oled.ClearDisplay()

	rtc := ds3231.New(machine.I2C0)
	rtc.Configure()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		btns:   newPinButtons(machine.GP14, machine.GP15),
		clk:    &tinyGoClock{start: time.Now()},
		cal:    &rtcCalendar{dev: rtc},
		surf:   newMonoSurface(128, 64, blitSSD1306(&oled)),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) Buttons() Buttons   { return h.btns }
func (h *tinyGoHAL) Clock() Clock       { return h.clk }
func (h *tinyGoHAL) Calendar() Calendar { return h.cal }
func (h *tinyGoHAL) Surface() Surface   { return h.surf }

func blitSSD1306(d *ssd1306.Device) func(*monoSurface) error {
	on := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	return func(s *monoSurface) error {
		d.ClearBuffer()
		for y := 0; y < s.h; y++ {
			row := y * s.stride
			for x := 0; x < s.w; x++ {
				if s.buf[row+x>>3]&(0x80>>(x&7)) != 0 {
					d.SetPixel(int16(x), int16(y), on)
				}
			}
		}
		return d.Display()
	}
}

type pinButtons struct {
	pins [ButtonLines]machine.Pin
}

func newPinButtons(primary, secondary machine.Pin) *pinButtons {
	b := &pinButtons{pins: [ButtonLines]machine.Pin{primary, secondary}}
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

func (b *pinButtons) ReadLevel(line int) bool {
	if line < 0 || line >= len(b.pins) {
		return true
	}
	return b.pins[line].Get()
}

type tinyGoClock struct {
	start time.Time
}

func (c *tinyGoClock) NowTicks() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}

// rtcCalendar reads the DS3231 on every call. Read errors fall back to zero
// fields; the face draws whatever comes back.
type rtcCalendar struct {
	dev ds3231.Device
}

func (c *rtcCalendar) Now() DateTime {
	t, err := c.dev.ReadTime()
	if err != nil {
		return DateTime{}
	}
	return DateTime{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
