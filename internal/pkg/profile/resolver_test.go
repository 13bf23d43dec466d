//go:build unit

package profile

import (
	"errors"
	"net"
	"testing"

	"golang-netshare/internal/mock"
	"golang-netshare/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func isDottedQuad(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func TestAll(t *testing.T) {
	profiles := All()
	require.Len(t, profiles, 2)

	for _, p := range profiles {
		t.Run(string(p.ID), func(t *testing.T) {
			assert.NotEmpty(t, p.InterfaceName)
			assert.True(t, isDottedQuad(p.StaticAddress), "address %q", p.StaticAddress)
			assert.True(t, isDottedQuad(p.SubnetMask), "mask %q", p.SubnetMask)
		})
	}

	t.Run("ReturnsCopy", func(t *testing.T) {
		profiles[0].InterfaceName = "changed"
		assert.Equal(t, "Ethernet", All()[0].InterfaceName)
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		selection string
		want      types.ProfileID
		iface     string
	}{
		{"windows10", types.ProfileWindows10, "Ethernet"},
		{"Windows 10", types.ProfileWindows10, "Ethernet"},
		{"1", types.ProfileWindows10, "Ethernet"},
		{" WIN10 ", types.ProfileWindows10, "Ethernet"},
		{"windows11", types.ProfileWindows11, "Wi-Fi"},
		{"2", types.ProfileWindows11, "Wi-Fi"},
	}

	for _, tt := range tests {
		t.Run(tt.selection, func(t *testing.T) {
			p, err := Parse(tt.selection)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ID)
			assert.Equal(t, tt.iface, p.InterfaceName)
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		for _, selection := range []string{"", "3", "windows7", "auto"} {
			_, err := Parse(selection)
			assert.ErrorIs(t, err, types.ErrUnsupportedProfile, "selection %q", selection)
		}
	})
}

func TestFromVersion(t *testing.T) {
	t.Run("Windows10", func(t *testing.T) {
		p, err := FromVersion(types.OSVersion{Major: 10, Minor: 0, Build: 19045})
		require.NoError(t, err)
		assert.Equal(t, types.ProfileWindows10, p.ID)
	})

	t.Run("Windows11", func(t *testing.T) {
		p, err := FromVersion(types.OSVersion{Major: 10, Minor: 0, Build: 22000})
		require.NoError(t, err)
		assert.Equal(t, types.ProfileWindows11, p.ID)
		assert.Equal(t, "192.168.0.11", p.StaticAddress)
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := FromVersion(types.OSVersion{Major: 6, Minor: 1, Build: 7601})
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
		assert.Contains(t, err.Error(), "6.1.7601")
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("ExplicitSelectionSkipsDetection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := mock.NewMockOSVersionProvider(ctrl)

		p, err := NewResolver(detector).Resolve("windows11")
		require.NoError(t, err)
		assert.Equal(t, types.ProfileWindows11, p.ID)
	})

	t.Run("AutoUsesDetectedVersion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := mock.NewMockOSVersionProvider(ctrl)
		detector.EXPECT().DetectVersion().Return(types.OSVersion{Major: 10, Build: 22631}, nil)

		p, err := NewResolver(detector).Resolve(SelectorAuto)
		require.NoError(t, err)
		assert.Equal(t, types.ProfileWindows11, p.ID)
	})

	t.Run("EmptySelectorIsUnsupported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := mock.NewMockOSVersionProvider(ctrl)
		// No DetectVersion expectation: an empty answer must not trigger detection.

		_, err := NewResolver(detector).Resolve("  ")
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
	})

	t.Run("DetectionFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		detector := mock.NewMockOSVersionProvider(ctrl)
		detector.EXPECT().DetectVersion().Return(types.OSVersion{}, errors.New("not supported on linux"))

		_, err := NewResolver(detector).Resolve("auto")
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
		assert.Contains(t, err.Error(), "not supported on linux")
	})

	t.Run("NoDetector", func(t *testing.T) {
		_, err := NewResolver(nil).Resolve("auto")
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
	})

	t.Run("UnsupportedSelection", func(t *testing.T) {
		_, err := NewResolver(nil).Resolve("macos")
		assert.ErrorIs(t, err, types.ErrUnsupportedProfile)
	})
}
