// Package render turns directional sources into filled rectangles.
//
// Geometry is computed by Layout.Build without touching a graphics context;
// a Sink does the drawing. ImageSink draws onto an ebiten image.
package render
