package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/cobra"
)

var playMusical bool

var playCmd = &cobra.Command{
	Use:   "play [text]",
	Short: "Render text and play it through the speakers",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(args)
		if err != nil {
			return err
		}
		codec, err := selectCodec(playMusical)
		if err != nil {
			return err
		}
		sig, err := codec.Synthesize(text)
		if err != nil {
			return err
		}
		if len(sig.Samples) == 0 {
			return nil
		}

		pcm := make([]byte, 2*len(sig.Samples))
		for i, s := range sig.Samples {
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(math.Round(s*32767))))
		}

		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sig.SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return fmt.Errorf("open audio device: %w", err)
		}
		<-ready

		p := ctx.NewPlayer(bytes.NewReader(pcm))
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		return p.Close()
	},
}

func init() {
	playCmd.Flags().BoolVarP(&playMusical, "musical", "m", false, "use the musical note scale")
	rootCmd.AddCommand(playCmd)
}
