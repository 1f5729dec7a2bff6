// Copyright 2018 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"github.com/u-root/u-bringup/pkg/hardware/imx51"
)

// Pads is the board pin mux, applied in this order before anything else.
// USBH1_STP is not listed. It keeps its reset default until the USBH1 PHY
// reset borrows it and then hands it to the ULPI port.
var Pads = []imx51.Pad{
	// UART1
	imx51.PAD_UART1_RXD__UART1_RXD,
	imx51.PAD_UART1_TXD__UART1_TXD,
	imx51.PAD_UART1_RTS__UART1_RTS,
	imx51.PAD_UART1_CTS__UART1_CTS,

	// UART2
	imx51.PAD_UART2_RXD__UART2_RXD,
	imx51.PAD_UART2_TXD__UART2_TXD,

	// UART3
	imx51.PAD_EIM_D25__UART3_RXD,
	imx51.PAD_EIM_D26__UART3_TXD,
	imx51.PAD_EIM_D27__UART3_RTS,
	imx51.PAD_EIM_D24__UART3_CTS,

	// I2C1
	imx51.PAD_EIM_D16__I2C1_SDA,
	imx51.PAD_EIM_D19__I2C1_SCL,

	// I2C2
	imx51.PAD_KEY_COL4__I2C2_SCL,
	imx51.PAD_KEY_COL5__I2C2_SDA,

	// HS-I2C
	imx51.PAD_I2C1_CLK__I2C1_CLK,
	imx51.PAD_I2C1_DAT__I2C1_DAT,

	// USB host1 ULPI
	imx51.PAD_USBH1_CLK__USBH1_CLK,
	imx51.PAD_USBH1_DIR__USBH1_DIR,
	imx51.PAD_USBH1_NXT__USBH1_NXT,
	imx51.PAD_USBH1_DATA0__USBH1_DATA0,
	imx51.PAD_USBH1_DATA1__USBH1_DATA1,
	imx51.PAD_USBH1_DATA2__USBH1_DATA2,
	imx51.PAD_USBH1_DATA3__USBH1_DATA3,
	imx51.PAD_USBH1_DATA4__USBH1_DATA4,
	imx51.PAD_USBH1_DATA5__USBH1_DATA5,
	imx51.PAD_USBH1_DATA6__USBH1_DATA6,
	imx51.PAD_USBH1_DATA7__USBH1_DATA7,

	// USB hub reset
	imx51.PAD_GPIO1_7__GPIO1_7,

	// USB PHY reset
	imx51.PAD_EIM_D21__GPIO2_5,

	// FEC
	imx51.PAD_EIM_EB2__FEC_MDIO,
	imx51.PAD_EIM_EB3__FEC_RDATA1,
	imx51.PAD_EIM_CS2__FEC_RDATA2,
	imx51.PAD_EIM_CS3__FEC_RDATA3,
	imx51.PAD_EIM_CS4__FEC_RX_ER,
	imx51.PAD_EIM_CS5__FEC_CRS,
	imx51.PAD_DISP2_DAT10__FEC_COL,
	imx51.PAD_DISP2_DAT11__FEC_RXCLK,
	imx51.PAD_DISP2_DAT14__FEC_RDAT0,
	imx51.PAD_DISP2_DAT15__FEC_TDAT0,
	imx51.PAD_NANDF_CS2__FEC_TX_ER,
	imx51.PAD_DI2_PIN2__FEC_MDC,
	imx51.PAD_DISP2_DAT6__FEC_TDAT1,
	imx51.PAD_DISP2_DAT7__FEC_TDAT2,
	imx51.PAD_DISP2_DAT8__FEC_TDAT3,
	imx51.PAD_DISP2_DAT9__FEC_TX_EN,
	imx51.PAD_DISP2_DAT13__FEC_TX_CLK,

	// FEC PHY reset
	imx51.PAD_EIM_A20__GPIO2_14,

	// SD1, card detect and write protect from the controller
	imx51.PAD_SD1_CMD__SD1_CMD,
	imx51.PAD_SD1_CLK__SD1_CLK,
	imx51.PAD_SD1_DATA0__SD1_DATA0,
	imx51.PAD_SD1_DATA1__SD1_DATA1,
	imx51.PAD_SD1_DATA2__SD1_DATA2,
	imx51.PAD_SD1_DATA3__SD1_DATA3,
	imx51.PAD_GPIO1_0__SD1_CD,
	imx51.PAD_GPIO1_1__SD1_WP,

	// eCSPI1
	imx51.PAD_CSPI1_MISO__ECSPI1_MISO,
	imx51.PAD_CSPI1_MOSI__ECSPI1_MOSI,
	imx51.PAD_CSPI1_SCLK__ECSPI1_SCLK,
	imx51.PAD_CSPI1_SS0__GPIO4_24,
	imx51.PAD_CSPI1_SS1__GPIO4_25,

	// Audio
	imx51.PAD_AUD3_BB_TXD__AUD3_TXD,
	imx51.PAD_AUD3_BB_RXD__AUD3_RXD,
	imx51.PAD_AUD3_BB_CK__AUD3_TXC,
	imx51.PAD_AUD3_BB_FS__AUD3_TXFS,
}
