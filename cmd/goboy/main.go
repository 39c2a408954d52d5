package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/dmgcore/internal/debug"
	"github.com/thelolagemann/dmgcore/internal/gameboy"
	"github.com/thelolagemann/dmgcore/internal/ppu"
	"github.com/thelolagemann/dmgcore/pkg/display/web"
	"github.com/thelolagemann/dmgcore/pkg/log"
	"github.com/thelolagemann/dmgcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	trace := flag.Uint64("trace", 0, "Trace the first n instructions at the debug level")
	serve := flag.String("serve", "", "Serve frames to websocket clients on this address, e.g. :8090")
	stats := flag.String("statsview", "", "Serve runtime statistics on this address, e.g. localhost:18066")
	quality := flag.Int("quality", 4, "The brotli quality (0-11) of frames sent to websocket clients")
	frameLimit := flag.Uint64("frames", 0, "Stop after n frames, 0 to run until interrupted")
	level := flag.String("log-level", "info", "The log level: debug, info, warn or error")
	flag.Parse()

	logger, err := log.ParseLevel(*level)
	if err != nil {
		logrus.Fatal(err)
	}
	if *trace > 0 && !logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.SetLevel(logrus.DebugLevel)
	}

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err)
	}

	if *stats != "" {
		viewer.SetConfiguration(viewer.WithAddr(*stats))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.Infof("statsview on http://%s/debug/statsview", *stats)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	monitor := debug.NewSerialMonitor()
	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.SkipBoot(),
		gameboy.SerialDebugger(monitor),
	}
	if *trace > 0 {
		opts = append(opts, gameboy.WithExecutionHook(debug.NewTracer(logger, *trace)))
	}

	if *serve != "" {
		hub := web.NewHub(*quality, logger)
		frames := make(chan ppu.Frame, 1)
		opts = append(opts, gameboy.WithFrames(frames))

		go hub.Run(ctx)
		go hub.Consume(frames)
		go func() {
			if err := http.ListenAndServe(*serve, hub); err != nil {
				logger.Errorf("web: %v", err)
			}
		}()
		defer func() {
			if err := hub.Close(); err != nil {
				logger.Errorf("web: %v", err)
			}
		}()
		logger.Infof("serving frames on ws://%s", *serve)
	}

	gb := gameboy.NewGameBoy(rom, opts...)
	if *frameLimit > 0 {
		err = gb.RunFor(*frameLimit * gameboy.CyclesPerFrame)
	} else {
		err = gb.Run(ctx)
	}
	if err != nil {
		logger.Errorf("%v", err)
	}
	if out := monitor.Output(); out != "" {
		logger.Infof("serial output: %q", out)
	}
}
