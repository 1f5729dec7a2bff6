// Copyright 2018-2019 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imx51

// Pad control presets shared by pads of the same kind
const (
	UART_PAD_CTRL   = PAD_CTL_HYS | PAD_CTL_PKE | PAD_CTL_DSE_HIGH | PAD_CTL_SRE_FAST
	I2C_PAD_CTRL    = PAD_CTL_SRE_FAST | PAD_CTL_ODE | PAD_CTL_DSE_HIGH | PAD_CTL_PUS_100K_UP | PAD_CTL_HYS
	HSI2C_PAD_CTRL  = PAD_CTL_ODE | PAD_CTL_PUS_100K_UP | PAD_CTL_DSE_HIGH
	USBH1_PAD_CTRL  = PAD_CTL_SRE_FAST | PAD_CTL_DSE_HIGH | PAD_CTL_PUE | PAD_CTL_PKE | PAD_CTL_HYS
	SDHCI_PAD_CTRL  = PAD_CTL_DSE_HIGH | PAD_CTL_PUS_47K_UP | PAD_CTL_PUE | PAD_CTL_PKE | PAD_CTL_SRE_FAST | PAD_CTL_DVS
	FEC_PAD_CTRL    = PAD_CTL_DSE_HIGH | PAD_CTL_PKE | PAD_CTL_HYS
	GPIO_PAD_CTRL   = PAD_CTL_DSE_HIGH | PAD_CTL_PKE | PAD_CTL_SRE_FAST
	ECSPI_PAD_CTRL  = PAD_CTL_SRE_FAST | PAD_CTL_DSE_HIGH | PAD_CTL_PUS_100K_DOWN
	AUDMUX_PAD_CTRL = PAD_CTL_PKE | PAD_CTL_PUS_22K_UP | PAD_CTL_HYS
)

// Argument order follows the IOMUX_PAD macro of the reference manual tables.
func pad(name string, padCtrlOfs, muxCtrlOfs uint16, muxMode uint8, selInputOfs uint16, selInput uint8, padCtrl uint32) Pad {
	return Pad{
		Name:        name,
		MuxCtrlOfs:  muxCtrlOfs,
		MuxMode:     muxMode,
		PadCtrlOfs:  padCtrlOfs,
		PadCtrl:     padCtrl,
		SelInputOfs: selInputOfs,
		SelInput:    selInput,
	}
}

var (
	PAD_UART1_RXD__UART1_RXD = pad("UART1_RXD__UART1_RXD", 0x618, 0x228, 0, 0x9e4, 0, UART_PAD_CTRL)
	PAD_UART1_TXD__UART1_TXD = pad("UART1_TXD__UART1_TXD", 0x61c, 0x22c, 0, 0, 0, UART_PAD_CTRL)
	PAD_UART1_RTS__UART1_RTS = pad("UART1_RTS__UART1_RTS", 0x620, 0x230, 0, 0x9e0, 0, UART_PAD_CTRL)
	PAD_UART1_CTS__UART1_CTS = pad("UART1_CTS__UART1_CTS", 0x624, 0x234, 0, 0, 0, UART_PAD_CTRL)
	PAD_UART2_RXD__UART2_RXD = pad("UART2_RXD__UART2_RXD", 0x628, 0x238, 0, 0x9ec, 2, UART_PAD_CTRL)
	PAD_UART2_TXD__UART2_TXD = pad("UART2_TXD__UART2_TXD", 0x62c, 0x23c, 0, 0, 0, UART_PAD_CTRL)
	PAD_EIM_D24__UART3_CTS   = pad("EIM_D24__UART3_CTS", 0x410, 0x07c, 3, 0, 0, UART_PAD_CTRL)
	PAD_EIM_D25__UART3_RXD   = pad("EIM_D25__UART3_RXD", 0x414, 0x080, 3, 0x9f4, 0, UART_PAD_CTRL)
	PAD_EIM_D26__UART3_TXD   = pad("EIM_D26__UART3_TXD", 0x418, 0x084, 3, 0, 0, UART_PAD_CTRL)
	PAD_EIM_D27__UART3_RTS   = pad("EIM_D27__UART3_RTS", 0x41c, 0x088, 3, 0x9f0, 3, UART_PAD_CTRL)

	PAD_EIM_D16__I2C1_SDA  = pad("EIM_D16__I2C1_SDA", 0x3f0, 0x05c, 0x4|IOMUX_CONFIG_SION, 0x9b4, 0, I2C_PAD_CTRL)
	PAD_EIM_D19__I2C1_SCL  = pad("EIM_D19__I2C1_SCL", 0x3fc, 0x068, 0x4|IOMUX_CONFIG_SION, 0x9b0, 0, I2C_PAD_CTRL)
	PAD_KEY_COL4__I2C2_SCL = pad("KEY_COL4__I2C2_SCL", 0x640, 0x250, 0x3|IOMUX_CONFIG_SION, 0x9b8, 1, I2C_PAD_CTRL)
	PAD_KEY_COL5__I2C2_SDA = pad("KEY_COL5__I2C2_SDA", 0x644, 0x254, 0x3|IOMUX_CONFIG_SION, 0x9bc, 1, I2C_PAD_CTRL)
	PAD_I2C1_CLK__I2C1_CLK = pad("I2C1_CLK__I2C1_CLK", 0x7d4, 0x3e8, IOMUX_CONFIG_SION, 0, 0, HSI2C_PAD_CTRL)
	PAD_I2C1_DAT__I2C1_DAT = pad("I2C1_DAT__I2C1_DAT", 0x7d8, 0x3ec, IOMUX_CONFIG_SION, 0, 0, HSI2C_PAD_CTRL)

	PAD_USBH1_CLK__USBH1_CLK     = pad("USBH1_CLK__USBH1_CLK", 0x678, 0x278, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DIR__USBH1_DIR     = pad("USBH1_DIR__USBH1_DIR", 0x67c, 0x27c, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_STP__USBH1_STP     = pad("USBH1_STP__USBH1_STP", 0x680, 0x280, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_STP__GPIO1_27      = pad("USBH1_STP__GPIO1_27", 0x680, 0x280, 2, 0, 0, GPIO_PAD_CTRL)
	PAD_USBH1_NXT__USBH1_NXT     = pad("USBH1_NXT__USBH1_NXT", 0x684, 0x284, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA0__USBH1_DATA0 = pad("USBH1_DATA0__USBH1_DATA0", 0x688, 0x288, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA1__USBH1_DATA1 = pad("USBH1_DATA1__USBH1_DATA1", 0x68c, 0x28c, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA2__USBH1_DATA2 = pad("USBH1_DATA2__USBH1_DATA2", 0x690, 0x290, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA3__USBH1_DATA3 = pad("USBH1_DATA3__USBH1_DATA3", 0x694, 0x294, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA4__USBH1_DATA4 = pad("USBH1_DATA4__USBH1_DATA4", 0x698, 0x298, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA5__USBH1_DATA5 = pad("USBH1_DATA5__USBH1_DATA5", 0x69c, 0x29c, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA6__USBH1_DATA6 = pad("USBH1_DATA6__USBH1_DATA6", 0x6a0, 0x2a0, 0, 0, 0, USBH1_PAD_CTRL)
	PAD_USBH1_DATA7__USBH1_DATA7 = pad("USBH1_DATA7__USBH1_DATA7", 0x6a4, 0x2a4, 0, 0, 0, USBH1_PAD_CTRL)

	PAD_GPIO1_7__GPIO1_7    = pad("GPIO1_7__GPIO1_7", 0x808, 0x3dc, 0, 0, 0, GPIO_PAD_CTRL)
	PAD_EIM_D21__GPIO2_5    = pad("EIM_D21__GPIO2_5", 0x404, 0x070, 1, 0, 0, GPIO_PAD_CTRL)
	PAD_EIM_A20__GPIO2_14   = pad("EIM_A20__GPIO2_14", 0x440, 0x0ac, 1, 0, 0, GPIO_PAD_CTRL)
	PAD_CSPI1_SS0__GPIO4_24 = pad("CSPI1_SS0__GPIO4_24", 0x608, 0x218, 3, 0, 0, GPIO_PAD_CTRL)
	PAD_CSPI1_SS1__GPIO4_25 = pad("CSPI1_SS1__GPIO4_25", 0x60c, 0x21c, 3, 0, 0, GPIO_PAD_CTRL)

	PAD_EIM_EB2__FEC_MDIO       = pad("EIM_EB2__FEC_MDIO", 0x468, 0x0d4, 3, 0x954, 0, FEC_PAD_CTRL)
	PAD_EIM_EB3__FEC_RDATA1     = pad("EIM_EB3__FEC_RDATA1", 0x46c, 0x0d8, 3, 0x95c, 0, FEC_PAD_CTRL)
	PAD_EIM_CS2__FEC_RDATA2     = pad("EIM_CS2__FEC_RDATA2", 0x47c, 0x0e8, 3, 0x960, 0, FEC_PAD_CTRL)
	PAD_EIM_CS3__FEC_RDATA3     = pad("EIM_CS3__FEC_RDATA3", 0x480, 0x0ec, 3, 0x964, 0, FEC_PAD_CTRL)
	PAD_EIM_CS4__FEC_RX_ER      = pad("EIM_CS4__FEC_RX_ER", 0x484, 0x0f0, 3, 0x970, 0, FEC_PAD_CTRL)
	PAD_EIM_CS5__FEC_CRS        = pad("EIM_CS5__FEC_CRS", 0x488, 0x0f4, 3, 0x950, 0, FEC_PAD_CTRL)
	PAD_DISP2_DAT6__FEC_TDAT1   = pad("DISP2_DAT6__FEC_TDAT1", 0x86c, 0x35c, 2, 0, 0, FEC_PAD_CTRL)
	PAD_DISP2_DAT7__FEC_TDAT2   = pad("DISP2_DAT7__FEC_TDAT2", 0x870, 0x360, 2, 0, 0, FEC_PAD_CTRL)
	PAD_DISP2_DAT8__FEC_TDAT3   = pad("DISP2_DAT8__FEC_TDAT3", 0x874, 0x364, 2, 0, 0, FEC_PAD_CTRL)
	PAD_DISP2_DAT9__FEC_TX_EN   = pad("DISP2_DAT9__FEC_TX_EN", 0x878, 0x368, 2, 0, 0, FEC_PAD_CTRL)
	PAD_DISP2_DAT10__FEC_COL    = pad("DISP2_DAT10__FEC_COL", 0x87c, 0x36c, 2, 0x94c, 1, FEC_PAD_CTRL)
	PAD_DISP2_DAT11__FEC_RXCLK  = pad("DISP2_DAT11__FEC_RXCLK", 0x880, 0x370, 2, 0x968, 1, FEC_PAD_CTRL)
	PAD_DISP2_DAT13__FEC_TX_CLK = pad("DISP2_DAT13__FEC_TX_CLK", 0x888, 0x378, 2, 0x974, 1, FEC_PAD_CTRL)
	PAD_DISP2_DAT14__FEC_RDAT0  = pad("DISP2_DAT14__FEC_RDAT0", 0x88c, 0x37c, 2, 0x958, 1, FEC_PAD_CTRL)
	PAD_DISP2_DAT15__FEC_TDAT0  = pad("DISP2_DAT15__FEC_TDAT0", 0x890, 0x380, 2, 0, 0, FEC_PAD_CTRL)
	PAD_NANDF_CS2__FEC_TX_ER    = pad("NANDF_CS2__FEC_TX_ER", 0x520, 0x138, 2, 0, 0, FEC_PAD_CTRL)
	PAD_DI2_PIN2__FEC_MDC       = pad("DI2_PIN2__FEC_MDC", 0x858, 0x34c, 2, 0, 0, FEC_PAD_CTRL)

	PAD_SD1_CMD__SD1_CMD     = pad("SD1_CMD__SD1_CMD", 0x79c, 0x394, IOMUX_CONFIG_SION, 0, 0, SDHCI_PAD_CTRL)
	PAD_SD1_CLK__SD1_CLK     = pad("SD1_CLK__SD1_CLK", 0x7a0, 0x398, IOMUX_CONFIG_SION, 0, 0, SDHCI_PAD_CTRL)
	PAD_SD1_DATA0__SD1_DATA0 = pad("SD1_DATA0__SD1_DATA0", 0x7a4, 0x39c, 0, 0, 0, SDHCI_PAD_CTRL)
	PAD_SD1_DATA1__SD1_DATA1 = pad("SD1_DATA1__SD1_DATA1", 0x7a8, 0x3a0, 0, 0, 0, SDHCI_PAD_CTRL)
	PAD_SD1_DATA2__SD1_DATA2 = pad("SD1_DATA2__SD1_DATA2", 0x7ac, 0x3a4, 0, 0, 0, SDHCI_PAD_CTRL)
	PAD_SD1_DATA3__SD1_DATA3 = pad("SD1_DATA3__SD1_DATA3", 0x7b0, 0x3a8, 0, 0, 0, SDHCI_PAD_CTRL)
	PAD_GPIO1_0__SD1_CD      = pad("GPIO1_0__SD1_CD", 0x7b4, 0x3ac, 1, 0, 0, NO_PAD_CTRL)
	PAD_GPIO1_1__SD1_WP      = pad("GPIO1_1__SD1_WP", 0x7b8, 0x3b0, 1, 0, 0, NO_PAD_CTRL)

	PAD_CSPI1_MOSI__ECSPI1_MOSI = pad("CSPI1_MOSI__ECSPI1_MOSI", 0x600, 0x210, 0, 0, 0, ECSPI_PAD_CTRL)
	PAD_CSPI1_MISO__ECSPI1_MISO = pad("CSPI1_MISO__ECSPI1_MISO", 0x604, 0x214, 0, 0, 0, ECSPI_PAD_CTRL)
	PAD_CSPI1_SCLK__ECSPI1_SCLK = pad("CSPI1_SCLK__ECSPI1_SCLK", 0x614, 0x224, 0, 0, 0, ECSPI_PAD_CTRL)

	PAD_AUD3_BB_TXD__AUD3_TXD = pad("AUD3_BB_TXD__AUD3_TXD", 0x5d4, 0x1e4, 0, 0, 0, AUDMUX_PAD_CTRL)
	PAD_AUD3_BB_RXD__AUD3_RXD = pad("AUD3_BB_RXD__AUD3_RXD", 0x5d8, 0x1e8, 0, 0, 0, AUDMUX_PAD_CTRL)
	PAD_AUD3_BB_CK__AUD3_TXC  = pad("AUD3_BB_CK__AUD3_TXC", 0x5dc, 0x1ec, 0, 0, 0, AUDMUX_PAD_CTRL)
	PAD_AUD3_BB_FS__AUD3_TXFS = pad("AUD3_BB_FS__AUD3_TXFS", 0x5e0, 0x1f0, 0, 0, 0, AUDMUX_PAD_CTRL)
)
