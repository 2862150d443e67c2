// SPDX-License-Identifier: EPL-2.0

package mp3seek_test

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/mp3seek"
	"github.com/ik5/mp3seek/formats/mp3"
	"github.com/ik5/mp3seek/internal/audiotest"
)

// Example_decodeAll decodes a short clip into memory.
func Example_decodeAll() {
	data := audiotest.Stream(audiotest.CBR128(audiotest.JointStereo), 5)

	buf, err := mp3seek.DecodeAll(bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channels\n", buf.Format.SampleRate, buf.Format.NumChannels)
	fmt.Printf("%d samples per channel\n", buf.NumFrames())
	// Output:
	// 44100 Hz, 2 channels
	// 5760 samples per channel
}

// Example_downmix decodes a stereo clip into a single channel.
func Example_downmix() {
	data := audiotest.Stream(audiotest.CBR128(audiotest.Stereo), 2)

	buf, err := mp3seek.DecodeAll(bytes.NewReader(data), mp3.WithStereoMode(mp3.StereoDownmix))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf.Format.NumChannels, len(buf.Data))
	// Output:
	// 1 2304
}

// Example_transcodeToWAV writes a clip to a WAV file.
func Example_transcodeToWAV() {
	dir, err := os.MkdirTemp("", "mp3seek")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	out, err := os.Create(filepath.Join(dir, "clip.wav"))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	data := audiotest.Stream(audiotest.CBR128(audiotest.Mono), 3)
	frames, err := mp3seek.TranscodeToWAV(out, bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}

	info, err := out.Stat()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(frames, "frames")
	fmt.Println(info.Size(), "bytes")
	// Output:
	// 3456 frames
	// 6956 bytes
}
