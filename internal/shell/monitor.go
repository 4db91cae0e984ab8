package shell

import (
	"context"
	"errors"

	"github.com/schmitthub/dockhand/internal/charts"
	"github.com/schmitthub/dockhand/internal/signals"
)

func (s *Session) showNetworks(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	networks, err := client.ListNetworks(ctx)
	if err != nil {
		return err
	}
	s.renderNetworks(networks)
	return nil
}

func (s *Session) showVolumes(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	volumes, err := client.ListVolumes(ctx)
	if err != nil {
		return err
	}
	s.renderVolumes(volumes)
	return nil
}

func (s *Session) showStats(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	stats, err := client.ContainerStats(ctx)
	if err != nil {
		return err
	}
	s.renderStats(stats)
	return nil
}

func (s *Session) showSystem(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	info, err := client.SystemInfo(ctx)
	if err != nil {
		return err
	}
	s.renderSystemInfo(info)
	return nil
}

// tailEvents streams engine events until the user interrupts. The signal
// scope is per action, so Ctrl+C ends the tail and the session survives.
func (s *Session) tailEvents(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	s.ios.PrintInfo("Monitoring Docker events (Press Ctrl+C to stop)...")
	s.ios.RenderLabeledDivider("Events")

	streamCtx, stop := signals.SetupSignalContext(ctx)
	defer stop()

	err = client.Events(streamCtx, s.ios.Out, s.ios.ErrOut)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Session) showDashboard(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	stats, err := client.ContainerStats(ctx)
	if err != nil {
		return err
	}
	charts.NewRenderer(s.ios).Dashboard(stats)
	return nil
}

func (s *Session) showCharts(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	stats, err := client.ContainerStats(ctx)
	if err != nil {
		return err
	}
	containers, err := client.ListContainers(ctx)
	if err != nil {
		return err
	}
	images, err := client.ListImages(ctx)
	if err != nil {
		return err
	}

	r := charts.NewRenderer(s.ios)
	r.CPUChart(stats)
	r.MemoryChart(stats)
	r.SystemPie(stats)
	r.NetworkChart(stats)
	r.StorageChart(stats)
	r.StatusChart(containers)
	r.ImageSizeChart(images)
	return nil
}
