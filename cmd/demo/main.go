package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"muscle-dreamer/internal/demo"
)

func main() {
	profileMode := flag.String("profile", "", "enable profiling: cpu, mem, or \"\" to disable")
	flag.Parse()

	if *profileMode != "" {
		var mode func(*profile.Profile)
		switch *profileMode {
		case "cpu":
			mode = profile.CPUProfile
		case "mem":
			mode = profile.MemProfileAllocs
		default:
			log.Fatalf("unknown -profile mode %q (want cpu or mem)", *profileMode)
		}
		p := profile.Start(mode, profile.ProfilePath("."))
		defer p.Stop()
	}

	game := demo.NewGame()
	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
