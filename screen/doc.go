// Package screen hosts the calculator display: an RGB565 framebuffer the UI
// draws into, an ebiten window that presents it, and polled keyboard/mouse
// input. The framebuffer format matches small SPI panels so the drawing code
// stays portable.
package screen
