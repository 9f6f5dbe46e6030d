package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
  _____                  _ ____              _   _
 |_   _| __ ___ _ __   __| / ___| _ __   ___ | |_| |_ ___ _ __
   | || '__/ _ \ '_ \ / _` + "`" + ` \___ \| '_ \ / _ \| __| __/ _ \ '__|
   | || | |  __/ | | | (_| |___) | |_) | (_) | |_| ||  __/ |
   |_||_|  \___|_| |_|\__,_|____/| .__/ \___/ \__|\__\___|_|
                                 |_|`
