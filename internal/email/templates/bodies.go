package templates

const otpSubject = `Your {{.companyName}} Verification Code`

const otpBody = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f4f4f4;margin:0;padding:0;">
  <div style="max-width:600px;margin:40px auto;background:white;border-radius:8px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);color:white;padding:30px;text-align:center;">
      <h1 style="margin:0;font-size:28px;">{{.companyName}}</h1>
    </div>
    <div style="padding:40px 30px;">
      <h2>Hi {{.userName}}!</h2>
      <p>You requested a verification code. Here it is:</p>
      <div style="background:#f8f9fa;border:2px dashed #667eea;border-radius:8px;padding:20px;text-align:center;margin:30px 0;">
        <div style="font-size:36px;font-weight:bold;color:#667eea;letter-spacing:8px;font-family:'Courier New',monospace;">{{.otp}}</div>
        <div style="color:#666;font-size:14px;margin-top:10px;">Expires in {{.expiryMinutes}} minutes</div>
      </div>
      <p>Enter this code to complete your verification.</p>
      <div style="background:#fff3cd;border-left:4px solid #ffc107;padding:12px;margin:20px 0;color:#856404;font-size:14px;">
        <strong>Security Notice:</strong> Never share this code with anyone. {{.companyName}} will never ask for your OTP.
      </div>
      <p>If you didn't request this code, please ignore this email.</p>
    </div>
    <div style="background:#f8f9fa;padding:20px;text-align:center;color:#888;font-size:12px;">
      <p>&copy; 2025 {{.companyName}}. All rights reserved.</p>
      <p>This is an automated email, please do not reply.</p>
    </div>
  </div>
</body>
</html>`

const welcomeSubject = `Welcome to {{.companyName}}!`

const welcomeBody = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f4f4f4;margin:0;padding:0;">
  <div style="max-width:600px;margin:40px auto;background:white;border-radius:8px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#667eea 0%,#764ba2 100%);color:white;padding:40px 30px;text-align:center;">
      <h1 style="margin:0;font-size:28px;">Welcome to {{.companyName}}!</h1>
    </div>
    <div style="padding:40px 30px;">
      <h2>Hi {{.userName}}!</h2>
      <p>Thank you for joining {{.companyName}}. We're excited to have you on board.</p>
      <p>You can now book tickets, track journeys, and manage your trips all in one place.</p>
      <p>If you have any questions, just reply to this email or reach out to our support team.</p>
    </div>
    <div style="background:#f8f9fa;padding:20px;text-align:center;color:#888;font-size:12px;">
      <p>&copy; 2025 {{.companyName}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`

const bookingSubject = `Booking Confirmed - {{.bookingId}}`

const bookingBody = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;background-color:#f4f4f4;margin:0;padding:0;">
  <div style="max-width:600px;margin:40px auto;background:white;border-radius:8px;overflow:hidden;">
    <div style="background:linear-gradient(135deg,#11998e 0%,#38ef7d 100%);color:white;padding:30px;text-align:center;">
      <h1 style="margin:0;font-size:28px;">Booking Confirmed</h1>
    </div>
    <div style="padding:40px 30px;">
      <h2>Hi {{.userName}}!</h2>
      <p>Your booking has been confirmed. Here are the details:</p>
      <table style="width:100%;border-collapse:collapse;margin:20px 0;">
        <tr><td style="padding:8px;color:#666;">Booking ID</td><td style="padding:8px;font-weight:bold;">{{.bookingId}}</td></tr>
        <tr><td style="padding:8px;color:#666;">Route</td><td style="padding:8px;font-weight:bold;">{{.route}}</td></tr>
        <tr><td style="padding:8px;color:#666;">Date</td><td style="padding:8px;font-weight:bold;">{{.date}}</td></tr>
        <tr><td style="padding:8px;color:#666;">Seats</td><td style="padding:8px;font-weight:bold;">{{.seats}}</td></tr>
        <tr><td style="padding:8px;color:#666;">Price</td><td style="padding:8px;font-weight:bold;">{{.price}}</td></tr>
      </table>
      <p>Please arrive at least 15 minutes before departure.</p>
    </div>
    <div style="background:#f8f9fa;padding:20px;text-align:center;color:#888;font-size:12px;">
      <p>&copy; 2025 {{.companyName}}. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`
